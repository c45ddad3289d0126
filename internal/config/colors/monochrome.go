package colors

// Monochrome returns a grayscale scheme for terminals without color
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#EEEEEE",

		Create: "#EEEEEE",
		Edit:   "#EEEEEE",
		Delete: "#EEEEEE",

		ColumnBorder:   "#BCBCBC",
		TaskBorder:     "#626262",
		SelectedBorder: "#EEEEEE",
		SidebarBorder:  "#626262",

		Title:  "#EEEEEE",
		Subtle: "#808080",
		Normal: "#C6C6C6",

		StatusBarBg:   "#444444",
		StatusBarText: "#EEEEEE",
		ErrorFg:       "#EEEEEE",
	}
}
