package model

// Style selects the themed word lists used for username construction.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleGamer        Style = "gamer"
	StyleCreative     Style = "creative"
	StyleTech         Style = "tech"
	StyleFantasy      Style = "fantasy"
	StyleCool         Style = "cool"
	StyleCute         Style = "cute"
	StyleRandom       Style = "random"
)

// DefaultStyle is used whenever a requested style is unknown.
const DefaultStyle = StyleRandom

// Styles returns every supported style in display order.
func Styles() []Style {
	return []Style{
		StyleProfessional,
		StyleGamer,
		StyleCreative,
		StyleTech,
		StyleFantasy,
		StyleCool,
		StyleCute,
		StyleRandom,
	}
}

// ParseStyle maps s onto a known Style. Unknown or empty values fall back to
// DefaultStyle; this is a recovery, not an error.
func ParseStyle(s string) Style {
	for _, st := range Styles() {
		if string(st) == s {
			return st
		}
	}
	return DefaultStyle
}

// StrengthLabel is the qualitative tier of a password strength score.
type StrengthLabel string

const (
	StrengthNone       StrengthLabel = "No Password" // Sentinel for an empty password, outside the four tiers.
	StrengthWeak       StrengthLabel = "Weak"
	StrengthMedium     StrengthLabel = "Medium"
	StrengthStrong     StrengthLabel = "Strong"
	StrengthVeryStrong StrengthLabel = "Very Strong"
)

// Theme is the persisted presentation theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
