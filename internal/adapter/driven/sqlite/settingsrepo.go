package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/ericfisherdev/genpass/internal/domain/model"
	"github.com/ericfisherdev/genpass/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.SettingsStore = (*SettingsRepo)(nil)
	_ driven.StatsStore    = (*SettingsRepo)(nil)
)

// Keys of the app_settings table.
const (
	keyTheme                 = "theme"
	keyAnimations            = "animations"
	keyNotifications         = "notifications"
	keyAutoSave              = "auto_save"
	keyMaxHistory            = "max_history"
	keyDefaultUsernameLength = "default_username_length"
	keyDefaultPasswordLength = "default_password_length"
	keyTotalGenerated        = "total_generated"
)

// SettingsRepo is the SQLite implementation of the SettingsStore and
// StatsStore port interfaces, backed by the app_settings key/value table.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new SettingsRepo backed by the given DB.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetSettings returns the stored settings. Missing or unparsable keys keep
// their value from defaults.
func (r *SettingsRepo) GetSettings(ctx context.Context, defaults model.Settings) (model.Settings, error) {
	const query = `SELECT key, value FROM app_settings WHERE key <> ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, keyTotalGenerated)
	if err != nil {
		return defaults, fmt.Errorf("query app_settings: %w", err)
	}
	defer rows.Close()

	settings := defaults
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return defaults, fmt.Errorf("scan app_settings row: %w", err)
		}
		switch key {
		case keyTheme:
			if theme := model.Theme(value); theme == model.ThemeLight || theme == model.ThemeDark {
				settings.Theme = theme
			}
		case keyAnimations:
			settings.Animations = value == "1"
		case keyNotifications:
			settings.Notifications = value == "1"
		case keyAutoSave:
			settings.AutoSave = value == "1"
		case keyMaxHistory:
			if v, err := strconv.Atoi(value); err == nil {
				settings.MaxHistory = v
			}
		case keyDefaultUsernameLength:
			if v, err := strconv.Atoi(value); err == nil {
				settings.DefaultUsernameLength = v
			}
		case keyDefaultPasswordLength:
			if v, err := strconv.Atoi(value); err == nil {
				settings.DefaultPasswordLength = v
			}
		}
	}
	if err := rows.Err(); err != nil {
		return defaults, fmt.Errorf("iterate app_settings: %w", err)
	}

	return settings, nil
}

// SetSettings persists every setting in a single transaction.
func (r *SettingsRepo) SetSettings(ctx context.Context, settings model.Settings) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT OR REPLACE INTO app_settings (key, value) VALUES (?, ?)`

	rows := []struct{ key, value string }{
		{keyTheme, string(settings.Theme)},
		{keyAnimations, strconv.Itoa(boolToInt(settings.Animations))},
		{keyNotifications, strconv.Itoa(boolToInt(settings.Notifications))},
		{keyAutoSave, strconv.Itoa(boolToInt(settings.AutoSave))},
		{keyMaxHistory, strconv.Itoa(settings.MaxHistory)},
		{keyDefaultUsernameLength, strconv.Itoa(settings.DefaultUsernameLength)},
		{keyDefaultPasswordLength, strconv.Itoa(settings.DefaultPasswordLength)},
	}
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, upsert, row.key, row.value); err != nil {
			return fmt.Errorf("upsert app_settings %q: %w", row.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit app_settings: %w", err)
	}
	return nil
}

// TotalGenerated returns the running count of generated credentials.
func (r *SettingsRepo) TotalGenerated(ctx context.Context) (int64, error) {
	const query = `SELECT value FROM app_settings WHERE key = ?`

	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, keyTotalGenerated).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get total generated: %w", err)
	}

	total, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse total generated %q: %w", value, err)
	}
	return total, nil
}

// AddGenerated increments the running count by n and returns the new total.
func (r *SettingsRepo) AddGenerated(ctx context.Context, n int) (int64, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var value string
	err = tx.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE key = ?`, keyTotalGenerated).Scan(&value)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("get total generated: %w", err)
	}

	var total int64
	if value != "" {
		total, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse total generated %q: %w", value, err)
		}
	}
	total += int64(n)

	const upsert = `INSERT OR REPLACE INTO app_settings (key, value) VALUES (?, ?)`
	if _, err := tx.ExecContext(ctx, upsert, keyTotalGenerated, strconv.FormatInt(total, 10)); err != nil {
		return 0, fmt.Errorf("update total generated: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit total generated: %w", err)
	}
	return total, nil
}
