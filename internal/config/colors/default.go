package colors

// Default returns the sage green scheme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#87AF87",

		Create: "#AFD787",
		Edit:   "#87AFAF",
		Delete: "#D75F5F",

		ColumnBorder:   "#5F875F",
		TaskBorder:     "#4E4E4E",
		SelectedBorder: "#AFD7AF",
		SidebarBorder:  "#444444",

		Title:  "#AFD7AF",
		Subtle: "#6C6C6C",
		Normal: "#DADADA",

		StatusBarBg:   "#5F875F",
		StatusBarText: "#EEEEEE",
		ErrorFg:       "#FF8787",
	}
}
