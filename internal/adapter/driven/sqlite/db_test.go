package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func TestNewDB_FileBackedReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genpass.db")
	ctx := context.Background()

	db, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db.Writer))

	repo := NewFavoriteRepo(db, newTestSealer(t, "secret"))
	require.NoError(t, repo.Add(ctx, model.FavoriteEntry{ID: "keep", CreatedAt: baseTime, Password: "p@ss"}))
	require.NoError(t, db.Close())

	reopened, err := NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	require.NoError(t, RunMigrations(reopened.Writer), "migrations are idempotent")

	favs, err := NewFavoriteRepo(reopened, newTestSealer(t, "secret")).List(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "p@ss", favs[0].Password)
}

func TestNewDB_RestrictsCredentialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "genpass.db")

	db, err := NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.Equal(t, path, db.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, dbFileMode, info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	var secureDelete int
	require.NoError(t, db.Writer.QueryRow(`PRAGMA secure_delete`).Scan(&secureDelete))
	assert.Equal(t, 1, secureDelete)

	var journal string
	require.NoError(t, db.Reader.QueryRow(`PRAGMA journal_mode`).Scan(&journal))
	assert.Equal(t, "wal", journal)
}

func TestRunMigrations_SchemaVersion(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "genpass.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := SchemaVersion(db.Writer)
	require.NoError(t, err)
	assert.Zero(t, version, "fresh database")

	require.NoError(t, RunMigrations(db.Writer))

	version, err = SchemaVersion(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, LatestSchemaVersion, version)

	for _, table := range []string{"history_entries", "history_results", "favorites", "app_settings", migrationsTable} {
		var name string
		err := db.Reader.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	var total string
	require.NoError(t, db.Reader.QueryRow(`SELECT value FROM app_settings WHERE key = 'total_generated'`).Scan(&total))
	assert.Equal(t, "0", total)
}

func TestRunMigrations_DirtySchema(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "genpass.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db.Writer))

	markDirty(t, db.Writer)

	err = RunMigrations(db.Writer)
	require.ErrorIs(t, err, ErrDirtySchema)
	assert.Contains(t, err.Error(), "version 3")

	_, err = SchemaVersion(db.Writer)
	assert.ErrorIs(t, err, ErrDirtySchema)
}

func markDirty(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`UPDATE ` + migrationsTable + ` SET dirty = 1`)
	require.NoError(t, err)
}
