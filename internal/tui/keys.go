package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/sage/internal/config"
)

// KeyMap holds the key bindings built from the user's key mappings
type KeyMap struct {
	AddTask       key.Binding
	DeleteTask    key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding
	SplitText     key.Binding

	CreateColumn key.Binding
	RenameColumn key.Binding

	CreateBoard key.Binding
	RenameBoard key.Binding
	DeleteBoard key.Binding
	NextBoard   key.Binding
	PrevBoard   key.Binding

	ToggleView   key.Binding
	Compose      key.Binding
	NewChat      key.Binding
	NextChat     key.Binding
	PrevChat     key.Binding
	CopyChat     key.Binding
	SaveToKanban key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	Search   key.Binding
	ShowHelp key.Binding
	Quit     key.Binding
}

func bind(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

// NewKeyMap builds bindings from km. Arrow keys always navigate.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		AddTask:       bind("add card", km.AddTask),
		DeleteTask:    bind("delete card", km.DeleteTask),
		MoveTaskLeft:  bind("move card left", km.MoveTaskLeft),
		MoveTaskRight: bind("move card right", km.MoveTaskRight),
		MoveTaskUp:    bind("move card up", km.MoveTaskUp),
		MoveTaskDown:  bind("move card down", km.MoveTaskDown),
		SplitText:     bind("split text into inbox", km.SplitText),

		CreateColumn: bind("add column", km.CreateColumn),
		RenameColumn: bind("rename column", km.RenameColumn),

		CreateBoard: bind("new board", km.CreateBoard),
		RenameBoard: bind("rename board", km.RenameBoard),
		DeleteBoard: bind("delete board", km.DeleteBoard),
		NextBoard:   bind("next board", km.NextBoard),
		PrevBoard:   bind("previous board", km.PrevBoard),

		ToggleView:   bind("kanban / chat", km.ToggleView),
		Compose:      bind("write message", km.Compose),
		NewChat:      bind("new chat", km.NewChat),
		NextChat:     bind("next chat", km.NextChat),
		PrevChat:     bind("previous chat", km.PrevChat),
		CopyChat:     bind("copy chat", km.CopyChat),
		SaveToKanban: bind("save message to kanban", km.SaveToKanban),

		PrevColumn: bind("previous column", km.PrevColumn, "left"),
		NextColumn: bind("next column", km.NextColumn, "right"),
		PrevTask:   bind("up", km.PrevTask, "up"),
		NextTask:   bind("down", km.NextTask, "down"),

		Search:   bind("search", km.Search),
		ShowHelp: bind("help", km.ShowHelp),
		Quit:     bind("quit", km.Quit, "ctrl+c"),
	}
}

// helpSection groups bindings on the help screen
type helpSection struct {
	title    string
	bindings []key.Binding
}

func (k KeyMap) helpSections() []helpSection {
	return []helpSection{
		{"Cards", []key.Binding{k.AddTask, k.DeleteTask, k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown, k.SplitText}},
		{"Columns", []key.Binding{k.CreateColumn, k.RenameColumn}},
		{"Boards", []key.Binding{k.CreateBoard, k.RenameBoard, k.DeleteBoard, k.NextBoard, k.PrevBoard}},
		{"Chat", []key.Binding{k.ToggleView, k.Compose, k.NewChat, k.NextChat, k.PrevChat, k.CopyChat, k.SaveToKanban}},
		{"Navigation", []key.Binding{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask}},
		{"Other", []key.Binding{k.Search, k.ShowHelp, k.Quit}},
	}
}
