package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/genpass/internal/domain/model"
	"github.com/ericfisherdev/genpass/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.FavoriteStore = (*FavoriteRepo)(nil)

// FavoriteRepo is the SQLite implementation of the FavoriteStore port interface.
type FavoriteRepo struct {
	db     *DB
	sealer *Sealer
}

// NewFavoriteRepo creates a new FavoriteRepo backed by the given DB.
func NewFavoriteRepo(db *DB, sealer *Sealer) *FavoriteRepo {
	return &FavoriteRepo{db: db, sealer: sealer}
}

// Add stores the favorite. Re-adding an existing ID replaces its values but
// keeps its original position.
func (r *FavoriteRepo) Add(ctx context.Context, fav model.FavoriteEntry) error {
	password, err := r.sealer.Seal(fav.Password)
	if err != nil {
		return fmt.Errorf("seal favorite %s: %w", fav.ID, err)
	}

	const query = `
		INSERT INTO favorites (id, created_at, username, password)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			username   = excluded.username,
			password   = excluded.password
	`
	if _, err := r.db.Writer.ExecContext(ctx, query,
		fav.ID, formatTime(fav.CreatedAt), fav.Username, password,
	); err != nil {
		return fmt.Errorf("add favorite %s: %w", fav.ID, err)
	}
	return nil
}

// Remove deletes the favorite with the given ID.
func (r *FavoriteRepo) Remove(ctx context.Context, id string) error {
	const query = `DELETE FROM favorites WHERE id = ?`
	if _, err := r.db.Writer.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("remove favorite %s: %w", id, err)
	}
	return nil
}

// List returns all favorites in the order they were added.
func (r *FavoriteRepo) List(ctx context.Context) ([]model.FavoriteEntry, error) {
	const query = `SELECT id, created_at, username, password FROM favorites ORDER BY seq`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []model.FavoriteEntry
	for rows.Next() {
		var fav model.FavoriteEntry
		var createdAt, password string
		if err := rows.Scan(&fav.ID, &createdAt, &fav.Username, &password); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}

		fav.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for favorite %s: %w", fav.ID, err)
		}
		fav.Password, err = r.sealer.Open(password)
		if err != nil {
			return nil, fmt.Errorf("open favorite %s: %w", fav.ID, err)
		}

		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}

// Clear deletes every favorite.
func (r *FavoriteRepo) Clear(ctx context.Context) error {
	const query = `DELETE FROM favorites`
	if _, err := r.db.Writer.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}
