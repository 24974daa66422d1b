// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// DashboardViewModel holds everything the dashboard page renders.
type DashboardViewModel struct {
	CSRFToken string
	Theme     string
	Animated  bool
	Error     string

	Form      FormViewModel
	Results   []ResultViewModel
	History   []HistoryViewModel
	Favorites []FavoriteViewModel
	Stats     StatsViewModel
	Settings  SettingsViewModel
}

// SettingsViewModel holds the preferences form values.
type SettingsViewModel struct {
	DarkTheme     bool
	Animations    bool
	Notifications bool
	AutoSave      bool
	MaxHistory    int
	HistoryLimit  int
}

// FormViewModel holds the current values of the generation form.
type FormViewModel struct {
	UsernameEnabled  bool
	PasswordEnabled  bool
	Count            int
	MaxCount         int
	UsernameLength   int
	MaxUsername      int
	Style            string
	Styles           []StyleOption
	Prefix           string
	Suffix           string
	PasswordLength   int
	MaxPassword      int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// StyleOption is one entry of the username style selector.
type StyleOption struct {
	Value    string
	Label    string
	Selected bool
}

// StrengthViewModel holds the rendered strength meter of a password.
type StrengthViewModel struct {
	Score   int
	Max     int
	Label   string
	Percent int    // Fill of the meter bar, 0-100.
	Class   string // CSS modifier, e.g. "strength-weak".
}

// ResultViewModel holds one card of the live batch.
type ResultViewModel struct {
	ID          string
	Index       int
	Time        string
	Username    string
	Password    string
	HasUsername bool
	HasPassword bool
	Strength    StrengthViewModel
	Selected    bool
	Favorite    bool
}

// HistoryViewModel holds one history row.
type HistoryViewModel struct {
	Time    string
	Summary string
	Results []ResultViewModel
}

// FavoriteViewModel holds one favorite card.
type FavoriteViewModel struct {
	ID          string
	Time        string
	Username    string
	Password    string
	HasUsername bool
	HasPassword bool
	Strength    StrengthViewModel
}

// StatsViewModel holds the status bar counters, already formatted for display.
type StatsViewModel struct {
	TotalGenerated string
	Favorites      string
	HistoryEntries string
	Selected       int
	LiveResults    int
}

// DocumentViewModel holds a static page rendered from markdown.
type DocumentViewModel struct {
	Title string
	Theme string
	HTML  string // Sanitized HTML.
}
