package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// --- In-memory port implementations ---

type memHistoryStore struct {
	entries []model.HistoryEntry
	nextID  int64
	addErr  error
}

func (m *memHistoryStore) Add(_ context.Context, entry model.HistoryEntry) (int64, error) {
	if m.addErr != nil {
		return 0, m.addErr
	}
	m.nextID++
	entry.ID = m.nextID
	m.entries = append([]model.HistoryEntry{entry}, m.entries...)
	return entry.ID, nil
}

func (m *memHistoryStore) List(_ context.Context) ([]model.HistoryEntry, error) {
	return slices.Clone(m.entries), nil
}

func (m *memHistoryStore) Trim(_ context.Context, max int) error {
	if len(m.entries) > max {
		m.entries = m.entries[:max]
	}
	return nil
}

func (m *memHistoryStore) Clear(_ context.Context) error {
	m.entries = nil
	return nil
}

type memFavoriteStore struct {
	favorites []model.FavoriteEntry
	err       error
}

func (m *memFavoriteStore) Add(_ context.Context, fav model.FavoriteEntry) error {
	if m.err != nil {
		return m.err
	}
	m.favorites = append(m.favorites, fav)
	return nil
}

func (m *memFavoriteStore) Remove(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.favorites = slices.DeleteFunc(m.favorites, func(f model.FavoriteEntry) bool { return f.ID == id })
	return nil
}

func (m *memFavoriteStore) List(_ context.Context) ([]model.FavoriteEntry, error) {
	return slices.Clone(m.favorites), nil
}

func (m *memFavoriteStore) Clear(_ context.Context) error {
	m.favorites = nil
	return nil
}

type memSettingsStore struct {
	settings *model.Settings
	total    int64
}

func (m *memSettingsStore) GetSettings(_ context.Context, defaults model.Settings) (model.Settings, error) {
	if m.settings == nil {
		return defaults, nil
	}
	return *m.settings, nil
}

func (m *memSettingsStore) SetSettings(_ context.Context, s model.Settings) error {
	m.settings = &s
	return nil
}

func (m *memSettingsStore) TotalGenerated(_ context.Context) (int64, error) { return m.total, nil }

func (m *memSettingsStore) AddGenerated(_ context.Context, n int) (int64, error) {
	m.total += int64(n)
	return m.total, nil
}

type serviceFixture struct {
	svc       *CredentialService
	history   *memHistoryStore
	favorites *memFavoriteStore
	settings  *memSettingsStore
}

func newServiceFixture(t *testing.T, defaults model.Settings) serviceFixture {
	t.Helper()
	f := serviceFixture{
		history:   &memHistoryStore{},
		favorites: &memFavoriteStore{},
		settings:  &memSettingsStore{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewCredentialService(newTestResultStore(defaults.MaxHistory), f.history, f.favorites, f.settings, f.settings, defaults, logger)
	require.NoError(t, f.svc.Load(context.Background()))
	return f
}

func TestCredentialService_GeneratePersists(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()

	results, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, results, f.history.entries[0].Results)
	assert.Equal(t, int64(3), f.settings.total)
	assert.Equal(t, int64(3), f.svc.Stats().TotalGenerated)
}

func TestCredentialService_GenerateAdoptsStoredHistoryID(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()

	for range 3 {
		_, err := f.svc.Generate(ctx, scenarioRequest())
		require.NoError(t, err)
	}

	history := f.svc.History()
	require.Len(t, history, 3)
	for i, want := range []int64{3, 2, 1} {
		assert.Equal(t, want, history[i].ID)
		assert.Equal(t, f.history.entries[i].ID, history[i].ID)
	}

	f.history.addErr = errors.New("disk full")
	_, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)
	assert.Zero(t, f.svc.History()[0].ID, "unpersisted entry keeps the zero ID")
}

func TestCredentialService_GenerateTrimsPersistedHistory(t *testing.T) {
	defaults := model.DefaultSettings()
	defaults.MaxHistory = 2
	f := newServiceFixture(t, defaults)
	ctx := context.Background()

	for range 4 {
		_, err := f.svc.Generate(ctx, scenarioRequest())
		require.NoError(t, err)
	}

	assert.Len(t, f.history.entries, 2)
	assert.Len(t, f.svc.History(), 2)
}

func TestCredentialService_GenerateRejectsBadRequest(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())

	req := scenarioRequest()
	req.Password = model.PasswordConfig{Length: 10}
	_, err := f.svc.Generate(context.Background(), req)

	require.ErrorIs(t, err, ErrNoCharacterClassSelected)
	assert.True(t, IsUserError(err))
	assert.Empty(t, f.history.entries)
}

func TestCredentialService_GenerateSurvivesPersistenceFailure(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	f.history.addErr = errors.New("disk full")

	results, err := f.svc.Generate(context.Background(), scenarioRequest())
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Len(t, f.svc.History(), 1)
}

func TestCredentialService_AutoSaveRemembersLengths(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())

	req := scenarioRequest()
	req.Username.Length = 10
	req.Password.Length = 20
	_, err := f.svc.Generate(context.Background(), req)
	require.NoError(t, err)

	got := f.svc.Settings()
	assert.Equal(t, 10, got.DefaultUsernameLength)
	assert.Equal(t, 20, got.DefaultPasswordLength)
	require.NotNil(t, f.settings.settings)
	assert.Equal(t, 20, f.settings.settings.DefaultPasswordLength)
}

func TestCredentialService_AutoSaveDisabled(t *testing.T) {
	defaults := model.DefaultSettings()
	defaults.AutoSave = false
	f := newServiceFixture(t, defaults)

	req := scenarioRequest()
	req.Password.Length = 30
	_, err := f.svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, defaults.DefaultPasswordLength, f.svc.Settings().DefaultPasswordLength)
	assert.Nil(t, f.settings.settings)
}

func TestCredentialService_FavoriteLifecycle(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()

	results, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)

	isFav, found, err := f.svc.ToggleFavorite(ctx, results[0].ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, isFav)
	require.Len(t, f.favorites.favorites, 1)

	_, err = f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)
	require.Len(t, f.svc.Favorites(), 1)
	assert.Equal(t, results[0].Password, f.svc.Favorites()[0].Password)

	removed, err := f.svc.RemoveFavorite(ctx, results[0].ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, f.favorites.favorites)
	assert.Empty(t, f.svc.Favorites())
}

func TestCredentialService_ToggleFavoriteUnknownID(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())

	isFav, found, err := f.svc.ToggleFavorite(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, isFav)
}

func TestCredentialService_ToggleFavoriteStoreError(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()
	results, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)

	f.favorites.err = errors.New("locked")
	_, found, err := f.svc.ToggleFavorite(ctx, results[0].ID)
	assert.True(t, found)
	require.Error(t, err)
	assert.False(t, IsUserError(err))
}

func TestCredentialService_LoadRestoresState(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()
	results, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)
	_, _, err = f.svc.ToggleFavorite(ctx, results[1].ID)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	restarted := NewCredentialService(newTestResultStore(50), f.history, f.favorites, f.settings, f.settings, model.DefaultSettings(), logger)
	require.NoError(t, restarted.Load(ctx))

	assert.Empty(t, restarted.Results(), "live batch is not persisted")
	assert.Len(t, restarted.History(), 1)
	require.Len(t, restarted.Favorites(), 1)
	assert.Equal(t, results[1].ID, restarted.Favorites()[0].ID)
	assert.Equal(t, int64(3), restarted.Stats().TotalGenerated)
}

func TestCredentialService_ClearOperations(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()
	results, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)
	_, _, err = f.svc.ToggleFavorite(ctx, results[0].ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.ClearHistory(ctx))
	assert.Empty(t, f.history.entries)
	assert.Empty(t, f.svc.History())

	require.NoError(t, f.svc.ClearFavorites(ctx))
	assert.Empty(t, f.favorites.favorites)

	f.svc.ClearResults()
	assert.Empty(t, f.svc.Results())
}

func TestCredentialService_SelectionAndExport(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()

	_, _, err := f.svc.Export(FormatCSV, false, testTime)
	require.ErrorIs(t, err, ErrNothingToExport)

	results, err := f.svc.Generate(ctx, scenarioRequest())
	require.NoError(t, err)

	_, _, err = f.svc.Export(FormatCSV, true, testTime)
	require.ErrorIs(t, err, ErrNothingToExport, "nothing selected yet")

	require.True(t, f.svc.ToggleSelected(results[2].ID))
	data, n, err := f.svc.Export(FormatJSON, true, testTime)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	doc, err := ParseExportJSON(data)
	require.NoError(t, err)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, results[2].ID, doc.Results[0].ID)

	assert.Equal(t, 3, f.svc.SelectAll())
	assert.Len(t, f.svc.Selected(), 3)
	assert.Equal(t, 3, f.svc.Stats().Selected)
}

func TestCredentialService_UpdateSettings(t *testing.T) {
	f := newServiceFixture(t, model.DefaultSettings())
	ctx := context.Background()
	for range 5 {
		_, err := f.svc.Generate(ctx, scenarioRequest())
		require.NoError(t, err)
	}

	next := f.svc.Settings()
	next.MaxHistory = 3
	next.Theme = model.ThemeDark
	require.NoError(t, f.svc.UpdateSettings(ctx, next))

	assert.Equal(t, model.ThemeDark, f.svc.Settings().Theme)
	assert.Len(t, f.svc.History(), 3)
	assert.Len(t, f.history.entries, 3)
}

func TestValidateSettings(t *testing.T) {
	valid := model.DefaultSettings()
	require.NoError(t, ValidateSettings(valid))

	tests := []struct {
		name   string
		mutate func(*model.Settings)
	}{
		{name: "unknown theme", mutate: func(s *model.Settings) { s.Theme = "neon" }},
		{name: "zero history", mutate: func(s *model.Settings) { s.MaxHistory = 0 }},
		{name: "huge history", mutate: func(s *model.Settings) { s.MaxHistory = MaxHistoryLimit + 1 }},
		{name: "zero username length", mutate: func(s *model.Settings) { s.DefaultUsernameLength = 0 }},
		{name: "huge password length", mutate: func(s *model.Settings) { s.DefaultPasswordLength = MaxPasswordLength + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.ErrorIs(t, ValidateSettings(s), ErrInvalidSettings)
		})
	}
}
