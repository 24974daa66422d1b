package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func TestSettingsRepo_GetSettings_Defaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	settings, err := repo.GetSettings(context.Background(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSettingsRepo_SetAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	want := model.Settings{
		Theme:                 model.ThemeDark,
		Animations:            false,
		Notifications:         true,
		AutoSave:              false,
		MaxHistory:            25,
		DefaultUsernameLength: 12,
		DefaultPasswordLength: 32,
	}
	require.NoError(t, repo.SetSettings(ctx, want))

	got, err := repo.GetSettings(ctx, model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsRepo_OverwriteSettings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	first := model.DefaultSettings()
	first.MaxHistory = 10
	require.NoError(t, repo.SetSettings(ctx, first))

	second := model.DefaultSettings()
	second.MaxHistory = 99
	require.NoError(t, repo.SetSettings(ctx, second))

	got, err := repo.GetSettings(ctx, model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 99, got.MaxHistory)
}

func TestSettingsRepo_PartialRowsFallBackToDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	_, err := db.Writer.ExecContext(ctx,
		`INSERT INTO app_settings (key, value) VALUES ('theme', 'dark'), ('max_history', 'lots'), ('default_password_length', '20')`)
	require.NoError(t, err)

	got, err := repo.GetSettings(ctx, model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, got.Theme)
	assert.Equal(t, model.DefaultSettings().MaxHistory, got.MaxHistory, "unparsable value keeps default")
	assert.Equal(t, 20, got.DefaultPasswordLength)
	assert.Equal(t, model.DefaultSettings().DefaultUsernameLength, got.DefaultUsernameLength)
}

func TestSettingsRepo_TotalGenerated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	total, err := repo.TotalGenerated(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	total, err = repo.AddGenerated(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	total, err = repo.AddGenerated(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	total, err = repo.TotalGenerated(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

func TestSettingsRepo_SetSettingsKeepsCounter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	_, err := repo.AddGenerated(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, repo.SetSettings(ctx, model.DefaultSettings()))

	total, err := repo.TotalGenerated(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}
