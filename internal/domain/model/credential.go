package model

import "time"

// CredentialResult is one generated item of a batch. An empty Username or
// Password means that generator was disabled for the batch; generated values
// are never empty.
type CredentialResult struct {
	ID        string
	CreatedAt time.Time
	Username  string
	Password  string
	Selected  bool // Live batch only.
	Favorite  bool // Live batch only; the persisted copy is a FavoriteEntry.
}

// HasUsername reports whether the result carries a username.
func (r CredentialResult) HasUsername() bool { return r.Username != "" }

// HasPassword reports whether the result carries a password.
func (r CredentialResult) HasPassword() bool { return r.Password != "" }

// FavoriteEntry is a copy of a favorited result that outlives its batch.
type FavoriteEntry struct {
	ID        string
	CreatedAt time.Time
	Username  string
	Password  string
}

// HistoryEntry records one generation event. Entries are immutable once created.
type HistoryEntry struct {
	ID              int64 // Assigned by the history store; zero until persisted.
	CreatedAt       time.Time
	Count           int
	UsernameEnabled bool
	PasswordEnabled bool
	Results         []CredentialResult
}

// Strength is the score and tier of a password.
type Strength struct {
	Score int
	Label StrengthLabel
}

// MaxStrengthScore is the highest score a password can reach.
const MaxStrengthScore = 9
