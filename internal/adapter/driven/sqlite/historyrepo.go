package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/genpass/internal/domain/model"
	"github.com/ericfisherdev/genpass/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.HistoryStore = (*HistoryRepo)(nil)

// HistoryRepo is the SQLite implementation of the HistoryStore port interface.
// Each entry's results live in history_results and are written in the same
// transaction as the entry.
type HistoryRepo struct {
	db     *DB
	sealer *Sealer
}

// NewHistoryRepo creates a new HistoryRepo. Passwords are sealed with sealer
// before they are written.
func NewHistoryRepo(db *DB, sealer *Sealer) *HistoryRepo {
	return &HistoryRepo{db: db, sealer: sealer}
}

// Add persists the entry and its results atomically and returns the new entry ID.
func (r *HistoryRepo) Add(ctx context.Context, entry model.HistoryEntry) (int64, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertEntry = `
		INSERT INTO history_entries (created_at, count, username_enabled, password_enabled)
		VALUES (?, ?, ?, ?)
	`
	res, err := tx.ExecContext(ctx, insertEntry,
		formatTime(entry.CreatedAt),
		entry.Count,
		boolToInt(entry.UsernameEnabled),
		boolToInt(entry.PasswordEnabled),
	)
	if err != nil {
		return 0, fmt.Errorf("insert history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get history entry id: %w", err)
	}

	const insertResult = `
		INSERT INTO history_results (history_id, position, result_id, created_at, username, password, favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i, result := range entry.Results {
		password, err := r.sealer.Seal(result.Password)
		if err != nil {
			return 0, fmt.Errorf("seal history result %s: %w", result.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insertResult,
			id, i, result.ID, formatTime(result.CreatedAt), result.Username, password, boolToInt(result.Favorite),
		); err != nil {
			return 0, fmt.Errorf("insert history result %s: %w", result.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit history entry: %w", err)
	}
	return id, nil
}

// List returns all history entries with their results, newest first.
func (r *HistoryRepo) List(ctx context.Context) ([]model.HistoryEntry, error) {
	const entriesQuery = `
		SELECT id, created_at, count, username_enabled, password_enabled
		FROM history_entries
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Reader.QueryContext(ctx, entriesQuery)
	if err != nil {
		return nil, fmt.Errorf("list history entries: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	index := make(map[int64]int)
	for rows.Next() {
		var entry model.HistoryEntry
		var createdAt string
		var usernameEnabled, passwordEnabled int
		if err := rows.Scan(&entry.ID, &createdAt, &entry.Count, &usernameEnabled, &passwordEnabled); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entry.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for history entry %d: %w", entry.ID, err)
		}
		entry.UsernameEnabled = usernameEnabled != 0
		entry.PasswordEnabled = passwordEnabled != 0
		index[entry.ID] = len(entries)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	if err := r.loadResults(ctx, entries, index); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepo) loadResults(ctx context.Context, entries []model.HistoryEntry, index map[int64]int) error {
	const resultsQuery = `
		SELECT history_id, result_id, created_at, username, password, favorite
		FROM history_results
		ORDER BY history_id, position
	`

	rows, err := r.db.Reader.QueryContext(ctx, resultsQuery)
	if err != nil {
		return fmt.Errorf("list history results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var historyID int64
		var result model.CredentialResult
		var createdAt, password string
		var favorite int
		if err := rows.Scan(&historyID, &result.ID, &createdAt, &result.Username, &password, &favorite); err != nil {
			return fmt.Errorf("scan history result: %w", err)
		}

		i, ok := index[historyID]
		if !ok {
			continue
		}

		result.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return fmt.Errorf("parse created_at for history result %s: %w", result.ID, err)
		}
		result.Password, err = r.sealer.Open(password)
		if err != nil {
			return fmt.Errorf("open history result %s: %w", result.ID, err)
		}
		result.Favorite = favorite != 0

		entries[i].Results = append(entries[i].Results, result)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate history results: %w", err)
	}
	return nil
}

// Trim deletes all but the max newest entries. Results are removed by the
// ON DELETE CASCADE foreign key.
func (r *HistoryRepo) Trim(ctx context.Context, max int) error {
	if max < 0 {
		max = 0
	}

	const query = `
		DELETE FROM history_entries
		WHERE id NOT IN (
			SELECT id FROM history_entries
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`
	if _, err := r.db.Writer.ExecContext(ctx, query, max); err != nil {
		return fmt.Errorf("trim history to %d: %w", max, err)
	}
	return nil
}

// Clear deletes every history entry and its results.
func (r *HistoryRepo) Clear(ctx context.Context) error {
	const query = `DELETE FROM history_entries`
	if _, err := r.db.Writer.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
