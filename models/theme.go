package models

// Theme preference values persisted client-side in the theme cookie.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// ValidTheme reports whether value is one of the accepted theme preferences.
func ValidTheme(value string) bool {
	switch value {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	default:
		return false
	}
}
