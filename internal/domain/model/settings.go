package model

// Settings holds the persisted user preferences.
type Settings struct {
	Theme                 Theme
	Animations            bool
	Notifications         bool
	AutoSave              bool // Remember the lengths of the last generation as new defaults.
	MaxHistory            int
	DefaultUsernameLength int
	DefaultPasswordLength int
}

const (
	defaultMaxHistory     = 50
	defaultUsernameLength = 8
	defaultPasswordLength = 12
)

// DefaultSettings returns the preferences used when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		Theme:                 ThemeLight,
		Animations:            true,
		Notifications:         true,
		AutoSave:              true,
		MaxHistory:            defaultMaxHistory,
		DefaultUsernameLength: defaultUsernameLength,
		DefaultPasswordLength: defaultPasswordLength,
	}
}
