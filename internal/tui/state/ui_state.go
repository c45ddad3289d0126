package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode             Mode = iota // Default navigation mode
	AddTaskMode                        // Typing a new card for the selected column
	SplitTextMode                      // Typing text to split into inbox cards
	RenameColumnMode                   // Renaming the selected column
	RenameBoardMode                    // Renaming the active board
	ComposeMode                        // Typing a chat message
	SearchMode                         // Filtering the sidebar (/)
	DeleteBoardConfirmMode             // Confirming board deletion
	HelpMode                           // Displaying help screen
)

// String returns a short label for the status line
func (m Mode) String() string {
	switch m {
	case AddTaskMode:
		return "ADD"
	case SplitTextMode:
		return "SPLIT"
	case RenameColumnMode, RenameBoardMode:
		return "RENAME"
	case ComposeMode:
		return "COMPOSE"
	case SearchMode:
		return "SEARCH"
	case DeleteBoardConfirmMode:
		return "CONFIRM"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// IsInput reports whether the mode collects typed text
func (m Mode) IsInput() bool {
	switch m {
	case AddTaskMode, SplitTextMode, RenameColumnMode, RenameBoardMode, ComposeMode:
		return true
	}
	return false
}

// UIState manages the user interface state.
// This includes navigation (column/task/message selection), terminal
// dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// selectedMessage is the index of the highlighted message in the chat view
	selectedMessage int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// SelectedMessage returns the index of the highlighted chat message.
func (s *UIState) SelectedMessage() int {
	return s.selectedMessage
}

// SetSelectedMessage updates the highlighted chat message index.
func (s *UIState) SetSelectedMessage(index int) {
	s.selectedMessage = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ClampSelection keeps the column and task selection inside the given
// bounds. columns is the column count; tasksIn returns the task count of a
// column index.
func (s *UIState) ClampSelection(columns int, tasksIn func(int) int) {
	if columns == 0 {
		s.selectedColumn = 0
		s.selectedTask = 0
		return
	}
	s.selectedColumn = max(0, min(s.selectedColumn, columns-1))
	n := tasksIn(s.selectedColumn)
	s.selectedTask = max(0, min(s.selectedTask, n-1))
}

// ClampMessage keeps the message selection inside [0, count-1]
func (s *UIState) ClampMessage(count int) {
	s.selectedMessage = max(0, min(s.selectedMessage, count-1))
}
