package application

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// MaxBatchCount is the largest number of credentials one request may generate.
const MaxBatchCount = 100

// ResultStore owns the live batch, the bounded history and the favorites list.
// It is a single-owner object and is not safe for concurrent use; see
// CredentialService for the synchronized wrapper.
type ResultStore struct {
	usernames *UsernameGenerator
	passwords *PasswordGenerator
	now       func() time.Time
	newID     func() string

	maxHistory int
	results    []model.CredentialResult
	history    []model.HistoryEntry // Newest first.
	favorites  []model.FavoriteEntry
	total      int64
}

// NewResultStore creates an empty ResultStore keeping at most maxHistory
// history entries. A maxHistory below 1 selects the default of 50.
func NewResultStore(usernames *UsernameGenerator, passwords *PasswordGenerator, maxHistory int) *ResultStore {
	if maxHistory < 1 {
		maxHistory = model.DefaultSettings().MaxHistory
	}
	return &ResultStore{
		usernames:  usernames,
		passwords:  passwords,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      newResultID,
		maxHistory: maxHistory,
	}
}

// newResultID returns a time-ordered UUIDv7, falling back to a random UUID if
// the clock-based variant cannot be produced.
func newResultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// GenerateBatch generates req.Count credentials, replaces the live batch with
// them and records a history entry. On error the store is left unchanged.
func (s *ResultStore) GenerateBatch(req model.GenerationRequest) ([]model.CredentialResult, error) {
	if !req.UsernameEnabled && !req.PasswordEnabled {
		return nil, ErrNoGeneratorEnabled
	}
	if req.Count < 1 || req.Count > MaxBatchCount {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidCount, MaxBatchCount, req.Count)
	}

	batch := make([]model.CredentialResult, 0, req.Count)
	for range req.Count {
		result := model.CredentialResult{
			ID:        s.newID(),
			CreatedAt: s.now(),
		}
		if req.UsernameEnabled {
			username, err := s.usernames.Generate(req.Username)
			if err != nil {
				return nil, fmt.Errorf("generate username: %w", err)
			}
			result.Username = username
		}
		if req.PasswordEnabled {
			password, err := s.passwords.Generate(req.Password)
			if err != nil {
				return nil, fmt.Errorf("generate password: %w", err)
			}
			result.Password = password
		}
		batch = append(batch, result)
	}

	s.results = batch
	s.total += int64(len(batch))
	s.addHistory(model.HistoryEntry{
		CreatedAt:       s.now(),
		Count:           len(batch),
		UsernameEnabled: req.UsernameEnabled,
		PasswordEnabled: req.PasswordEnabled,
		Results:         slices.Clone(batch),
	})

	return slices.Clone(batch), nil
}

// addHistory prepends entry and drops the oldest entries past maxHistory.
func (s *ResultStore) addHistory(entry model.HistoryEntry) {
	s.history = append([]model.HistoryEntry{entry}, s.history...)
	s.enforceHistoryBound()
}

func (s *ResultStore) enforceHistoryBound() {
	if len(s.history) > s.maxHistory {
		s.history = s.history[:s.maxHistory]
	}
}

// ToggleSelected flips the selected flag of the live result with the given ID.
// Returns false if no such result exists.
func (s *ResultStore) ToggleSelected(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.results[i].Selected = !s.results[i].Selected
	return true
}

// SelectAll marks every live result as selected and returns how many there are.
func (s *ResultStore) SelectAll() int {
	for i := range s.results {
		s.results[i].Selected = true
	}
	return len(s.results)
}

// ToggleFavorite flips the favorite flag of the live result with the given ID.
// Favoriting appends a copy to the favorites list; unfavoriting removes every
// favorite with that ID. It returns the copy, the new flag value and whether
// the result was found.
func (s *ResultStore) ToggleFavorite(id string) (model.FavoriteEntry, bool, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.FavoriteEntry{}, false, false
	}

	r := &s.results[i]
	r.Favorite = !r.Favorite
	fav := model.FavoriteEntry{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Username:  r.Username,
		Password:  r.Password,
	}
	if r.Favorite {
		s.favorites = append(s.favorites, fav)
	} else {
		s.removeFavorites(id)
	}
	return fav, r.Favorite, true
}

// RemoveFavorite deletes the favorite with the given ID and clears the flag on
// a live result carrying the same ID. Returns false if nothing was removed.
func (s *ResultStore) RemoveFavorite(id string) bool {
	removed := s.removeFavorites(id)
	if i := s.indexOf(id); i >= 0 {
		s.results[i].Favorite = false
	}
	return removed
}

func (s *ResultStore) removeFavorites(id string) bool {
	before := len(s.favorites)
	s.favorites = slices.DeleteFunc(s.favorites, func(f model.FavoriteEntry) bool {
		return f.ID == id
	})
	return len(s.favorites) != before
}

// ClearResults discards the live batch.
func (s *ResultStore) ClearResults() {
	s.results = nil
}

// ClearHistory discards every history entry.
func (s *ResultStore) ClearHistory() {
	s.history = nil
}

// ClearFavorites discards every favorite and clears the flag on live results.
func (s *ResultStore) ClearFavorites() {
	s.favorites = nil
	for i := range s.results {
		s.results[i].Favorite = false
	}
}

// SetMaxHistory changes the history bound and applies it immediately.
// Values below 1 are ignored.
func (s *ResultStore) SetMaxHistory(n int) {
	if n < 1 {
		return
	}
	s.maxHistory = n
	s.enforceHistoryBound()
}

// MaxHistory returns the current history bound.
func (s *ResultStore) MaxHistory() int {
	return s.maxHistory
}

// Restore replaces history, favorites and the running total with previously
// persisted state. The live batch is not touched.
func (s *ResultStore) Restore(history []model.HistoryEntry, favorites []model.FavoriteEntry, total int64) {
	s.history = slices.Clone(history)
	s.favorites = slices.Clone(favorites)
	s.total = total
	s.enforceHistoryBound()
}

// Results returns a copy of the live batch.
func (s *ResultStore) Results() []model.CredentialResult {
	return slices.Clone(s.results)
}

// Selected returns a copy of the selected live results.
func (s *ResultStore) Selected() []model.CredentialResult {
	var selected []model.CredentialResult
	for _, r := range s.results {
		if r.Selected {
			selected = append(selected, r)
		}
	}
	return selected
}

// History returns a copy of the history, newest first.
func (s *ResultStore) History() []model.HistoryEntry {
	return slices.Clone(s.history)
}

// LatestHistory returns the newest history entry, if any.
func (s *ResultStore) LatestHistory() (model.HistoryEntry, bool) {
	if len(s.history) == 0 {
		return model.HistoryEntry{}, false
	}
	return s.history[0], true
}

// setLatestHistoryID records the ID the history store assigned to the newest
// entry.
func (s *ResultStore) setLatestHistoryID(id int64) {
	if len(s.history) > 0 {
		s.history[0].ID = id
	}
}

// Favorites returns a copy of the favorites list.
func (s *ResultStore) Favorites() []model.FavoriteEntry {
	return slices.Clone(s.favorites)
}

// TotalGenerated returns the running count of generated credentials.
func (s *ResultStore) TotalGenerated() int64 {
	return s.total
}

func (s *ResultStore) indexOf(id string) int {
	return slices.IndexFunc(s.results, func(r model.CredentialResult) bool {
		return r.ID == id
	})
}
