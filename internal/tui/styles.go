package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sage/internal/config"
)

const (
	sidebarWidth = 30
	columnWidth  = 30
)

// Styles holds the lipgloss styles derived from a color scheme
type Styles struct {
	Column         lipgloss.Style
	SelectedColumn lipgloss.Style
	ColumnTitle    lipgloss.Style
	Task           lipgloss.Style
	SelectedTask   lipgloss.Style
	Empty          lipgloss.Style

	Sidebar       lipgloss.Style
	SidebarTitle  lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	SidebarWhen   lipgloss.Style

	Message         lipgloss.Style
	SelectedMessage lipgloss.Style
	MessageTime     lipgloss.Style

	Prompt       lipgloss.Style
	RenamePrompt lipgloss.Style
	DeletePrompt lipgloss.Style
	Search       lipgloss.Style

	StatusBar lipgloss.Style
	StatusErr lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
}

// NewStyles builds styles from scheme
func NewStyles(scheme config.ColorScheme) Styles {
	border := lipgloss.RoundedBorder()

	column := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(columnWidth)
	task := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(scheme.TaskBorder)).
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1).
		Width(columnWidth - 4)

	return Styles{
		Column:         column,
		SelectedColumn: column.BorderForeground(lipgloss.Color(scheme.SelectedBorder)),
		ColumnTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Title)),
		Task:           task,
		SelectedTask:   task.BorderForeground(lipgloss.Color(scheme.Accent)).Bold(true),
		Empty:          lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)).Italic(true),

		Sidebar: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(scheme.SidebarBorder)).
			Padding(0, 1).
			Width(sidebarWidth),
		SidebarTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Title)).MarginTop(1),
		SidebarItem:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Normal)),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Accent)).Bold(true),
		SidebarWhen:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),

		Message: lipgloss.NewStyle().
			Border(border, false, false, false, true).
			BorderForeground(lipgloss.Color(scheme.TaskBorder)).
			PaddingLeft(1),
		SelectedMessage: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			PaddingLeft(1),
		MessageTime: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),

		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Create)).Bold(true),
		RenamePrompt: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Edit)).Bold(true),
		DeletePrompt: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Delete)).Bold(true),
		Search:       lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Accent)),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(scheme.StatusBarBg)).
			Foreground(lipgloss.Color(scheme.StatusBarText)).
			Padding(0, 1),
		StatusErr: lipgloss.NewStyle().
			Background(lipgloss.Color(scheme.StatusBarBg)).
			Foreground(lipgloss.Color(scheme.ErrorFg)).
			Bold(true),
		HelpTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Accent)).MarginTop(1),
		HelpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Title)).Width(10),
	}
}
