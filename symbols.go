package mathml

// Delimiter returns glyph of a named fence delimiter, unknown names are returned as is.
func Delimiter(name string) string {
	switch name {
	case "\\langle":
		return "⟨"
	case "\\rangle":
		return "⟩"
	case "\\{", "\\lbrace":
		return "{"
	case "\\}", "\\rbrace":
		return "}"
	case "\\lbrack":
		return "["
	case "\\rbrack":
		return "]"
	case "\\lvert", "\\rvert", "\\vert":
		return "|"
	case "\\lVert", "\\rVert", "\\Vert", "\\|":
		return "‖"
	case "\\lfloor":
		return "⌊"
	case "\\rfloor":
		return "⌋"
	case "\\lceil":
		return "⌈"
	case "\\rceil":
		return "⌉"
	case ".":
		return ""
	default:
		return name
	}
}
