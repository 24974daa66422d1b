// Package application contains the generation core and the use-case services
// built on top of it.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ericfisherdev/genpass/internal/domain/model"
	"github.com/ericfisherdev/genpass/internal/domain/port/driven"
)

// MaxHistoryLimit bounds the configurable history size.
const MaxHistoryLimit = 1000

// Stats summarizes the current state for status displays.
type Stats struct {
	TotalGenerated int64
	Favorites      int
	HistoryEntries int
	LiveResults    int
	Selected       int
}

// CredentialService is the synchronized facade over a ResultStore that keeps
// history, favorites, settings and the running total persisted through the
// driven ports. All driving adapters go through it.
type CredentialService struct {
	mu        sync.Mutex
	store     *ResultStore
	history   driven.HistoryStore
	favorites driven.FavoriteStore
	settings  driven.SettingsStore
	stats     driven.StatsStore
	defaults  model.Settings
	current   model.Settings
	logger    *slog.Logger
}

// NewCredentialService creates a CredentialService. defaults seed the settings
// until Load finds stored values.
func NewCredentialService(
	store *ResultStore,
	history driven.HistoryStore,
	favorites driven.FavoriteStore,
	settings driven.SettingsStore,
	stats driven.StatsStore,
	defaults model.Settings,
	logger *slog.Logger,
) *CredentialService {
	store.SetMaxHistory(defaults.MaxHistory)
	return &CredentialService{
		store:     store,
		history:   history,
		favorites: favorites,
		settings:  settings,
		stats:     stats,
		defaults:  defaults,
		current:   defaults,
		logger:    logger,
	}
}

// Load restores settings, history, favorites and the running total from the
// driven stores.
func (s *CredentialService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.settings.GetSettings(ctx, s.defaults)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	history, err := s.history.List(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	total, err := s.stats.TotalGenerated(ctx)
	if err != nil {
		return fmt.Errorf("load total generated: %w", err)
	}

	s.current = settings
	s.store.SetMaxHistory(settings.MaxHistory)
	s.store.Restore(history, favorites, total)

	s.logger.Info("credential state loaded",
		"history_entries", len(history),
		"favorites", len(favorites),
		"total_generated", total,
	)
	return nil
}

// Generate produces a new batch and persists the resulting history entry and
// counter. Persistence failures are logged; the generated batch is still
// returned because the in-memory state is authoritative.
func (s *CredentialService) Generate(ctx context.Context, req model.GenerationRequest) ([]model.CredentialResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.store.GenerateBatch(req)
	if err != nil {
		return nil, err
	}

	if entry, ok := s.store.LatestHistory(); ok {
		id, err := s.history.Add(ctx, entry)
		if err != nil {
			s.logger.Warn("failed to persist history entry", "error", err)
		} else {
			s.store.setLatestHistoryID(id)
			if err := s.history.Trim(ctx, s.store.MaxHistory()); err != nil {
				s.logger.Warn("failed to trim history", "error", err)
			}
		}
	}

	if _, err := s.stats.AddGenerated(ctx, len(results)); err != nil {
		s.logger.Warn("failed to persist generation counter", "error", err)
	}

	if s.current.AutoSave {
		s.rememberLengths(ctx, req)
	}

	s.logger.Info("credentials generated",
		"count", len(results),
		"username_enabled", req.UsernameEnabled,
		"password_enabled", req.PasswordEnabled,
	)
	return results, nil
}

// rememberLengths stores the request lengths as the new default lengths.
func (s *CredentialService) rememberLengths(ctx context.Context, req model.GenerationRequest) {
	next := s.current
	if req.UsernameEnabled {
		next.DefaultUsernameLength = req.Username.Length
	}
	if req.PasswordEnabled {
		next.DefaultPasswordLength = req.Password.Length
	}
	if next == s.current {
		return
	}
	if err := s.settings.SetSettings(ctx, next); err != nil {
		s.logger.Warn("failed to auto-save settings", "error", err)
		return
	}
	s.current = next
}

// ToggleSelected flips the selection of a live result. Returns false if the
// ID is not part of the live batch.
func (s *CredentialService) ToggleSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ToggleSelected(id)
}

// SelectAll selects every live result and returns the count.
func (s *CredentialService) SelectAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SelectAll()
}

// ToggleFavorite flips the favorite flag of a live result and mirrors the
// change into the favorite store. It returns the new flag and whether the ID
// was found.
func (s *CredentialService) ToggleFavorite(ctx context.Context, id string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fav, favorite, found := s.store.ToggleFavorite(id)
	if !found {
		return false, false, nil
	}

	var err error
	if favorite {
		err = s.favorites.Add(ctx, fav)
	} else {
		err = s.favorites.Remove(ctx, id)
	}
	if err != nil {
		return favorite, true, fmt.Errorf("persist favorite %s: %w", id, err)
	}
	return favorite, true, nil
}

// RemoveFavorite deletes a favorite by ID. Returns false if it did not exist.
func (s *CredentialService) RemoveFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.store.RemoveFavorite(id)
	if err := s.favorites.Remove(ctx, id); err != nil {
		return removed, fmt.Errorf("remove favorite %s: %w", id, err)
	}
	return removed, nil
}

// ClearResults discards the live batch.
func (s *CredentialService) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ClearResults()
}

// ClearHistory discards all history entries.
func (s *CredentialService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearHistory()
	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// ClearFavorites discards all favorites.
func (s *CredentialService) ClearFavorites(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearFavorites()
	if err := s.favorites.Clear(ctx); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}

// Results returns the live batch.
func (s *CredentialService) Results() []model.CredentialResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Results()
}

// Selected returns the selected live results.
func (s *CredentialService) Selected() []model.CredentialResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Selected()
}

// History returns the history, newest first.
func (s *CredentialService) History() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.History()
}

// Favorites returns the favorites list.
func (s *CredentialService) Favorites() []model.FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Favorites()
}

// Stats returns counters describing the current state.
func (s *CredentialService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		TotalGenerated: s.store.TotalGenerated(),
		Favorites:      len(s.store.Favorites()),
		HistoryEntries: len(s.store.History()),
		LiveResults:    len(s.store.Results()),
		Selected:       len(s.store.Selected()),
	}
}

// Settings returns the current settings.
func (s *CredentialService) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// UpdateSettings validates and persists new settings and applies the history
// bound immediately.
func (s *CredentialService) UpdateSettings(ctx context.Context, next model.Settings) error {
	if err := ValidateSettings(next); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.SetSettings(ctx, next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.current = next
	s.store.SetMaxHistory(next.MaxHistory)
	if err := s.history.Trim(ctx, next.MaxHistory); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

// ValidateSettings checks ranges and enumerations of a settings value.
func ValidateSettings(st model.Settings) error {
	switch {
	case st.Theme != model.ThemeLight && st.Theme != model.ThemeDark:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, st.Theme)
	case st.MaxHistory < 1 || st.MaxHistory > MaxHistoryLimit:
		return fmt.Errorf("%w: max history must be between 1 and %d", ErrInvalidSettings, MaxHistoryLimit)
	case st.DefaultUsernameLength < 1 || st.DefaultUsernameLength > MaxUsernameLength:
		return fmt.Errorf("%w: default username length must be between 1 and %d", ErrInvalidSettings, MaxUsernameLength)
	case st.DefaultPasswordLength < 1 || st.DefaultPasswordLength > MaxPasswordLength:
		return fmt.Errorf("%w: default password length must be between 1 and %d", ErrInvalidSettings, MaxPasswordLength)
	}
	return nil
}

// Export serializes the live batch, or only its selected results, in format f.
func (s *CredentialService) Export(f ExportFormat, onlySelected bool, now time.Time) ([]byte, int, error) {
	s.mu.Lock()
	results := s.store.Results()
	if onlySelected {
		results = s.store.Selected()
	}
	s.mu.Unlock()

	if len(results) == 0 {
		return nil, 0, ErrNothingToExport
	}
	data, err := Export(f, results, now)
	if err != nil {
		return nil, 0, err
	}
	return data, len(results), nil
}

// ScoreStrength rates a password on the 0-9 scale.
func (s *CredentialService) ScoreStrength(password string) model.Strength {
	return ScoreStrength(password)
}
