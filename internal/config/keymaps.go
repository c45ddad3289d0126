package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddTask       string `yaml:"add_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`
	SplitText     string `yaml:"split_text"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`

	// Boards
	CreateBoard string `yaml:"create_board"`
	RenameBoard string `yaml:"rename_board"`
	DeleteBoard string `yaml:"delete_board"`
	NextBoard   string `yaml:"next_board"`
	PrevBoard   string `yaml:"prev_board"`

	// Chat
	ToggleView   string `yaml:"toggle_view"`
	Compose      string `yaml:"compose"`
	NewChat      string `yaml:"new_chat"`
	NextChat     string `yaml:"next_chat"`
	PrevChat     string `yaml:"prev_chat"`
	CopyChat     string `yaml:"copy_chat"`
	SaveToKanban string `yaml:"save_to_kanban"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddTask:       "a",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",
		SplitText:     "s",

		// Columns
		CreateColumn: "C",
		RenameColumn: "R",

		// Boards
		CreateBoard: "B",
		RenameBoard: "E",
		DeleteBoard: "X",
		NextBoard:   "}",
		PrevBoard:   "{",

		// Chat
		ToggleView:   "tab",
		Compose:      "i",
		NewChat:      "n",
		NextChat:     "]",
		PrevChat:     "[",
		CopyChat:     "y",
		SaveToKanban: "S",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.MoveTaskLeft == "" {
		k.MoveTaskLeft = defaults.MoveTaskLeft
	}
	if k.MoveTaskRight == "" {
		k.MoveTaskRight = defaults.MoveTaskRight
	}
	if k.MoveTaskUp == "" {
		k.MoveTaskUp = defaults.MoveTaskUp
	}
	if k.MoveTaskDown == "" {
		k.MoveTaskDown = defaults.MoveTaskDown
	}
	if k.SplitText == "" {
		k.SplitText = defaults.SplitText
	}
	if k.CreateColumn == "" {
		k.CreateColumn = defaults.CreateColumn
	}
	if k.RenameColumn == "" {
		k.RenameColumn = defaults.RenameColumn
	}
	if k.CreateBoard == "" {
		k.CreateBoard = defaults.CreateBoard
	}
	if k.RenameBoard == "" {
		k.RenameBoard = defaults.RenameBoard
	}
	if k.DeleteBoard == "" {
		k.DeleteBoard = defaults.DeleteBoard
	}
	if k.NextBoard == "" {
		k.NextBoard = defaults.NextBoard
	}
	if k.PrevBoard == "" {
		k.PrevBoard = defaults.PrevBoard
	}
	if k.ToggleView == "" {
		k.ToggleView = defaults.ToggleView
	}
	if k.Compose == "" {
		k.Compose = defaults.Compose
	}
	if k.NewChat == "" {
		k.NewChat = defaults.NewChat
	}
	if k.NextChat == "" {
		k.NextChat = defaults.NextChat
	}
	if k.PrevChat == "" {
		k.PrevChat = defaults.PrevChat
	}
	if k.CopyChat == "" {
		k.CopyChat = defaults.CopyChat
	}
	if k.SaveToKanban == "" {
		k.SaveToKanban = defaults.SaveToKanban
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
