package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// ErrEncryptionKeyNotSet is returned when a stored value was sealed with a
// secret key but GENPASS_SECRET_KEY is no longer configured.
var ErrEncryptionKeyNotSet = errors.New("encryption key not configured: set GENPASS_SECRET_KEY")

// FavoriteStore defines the driven port for favorite credential persistence.
// Password values cross this boundary in plaintext; adapters may seal them at rest.
type FavoriteStore interface {
	// Add stores the favorite. Adding an ID that already exists replaces it.
	Add(ctx context.Context, fav model.FavoriteEntry) error
	// Remove deletes the favorite with the given ID. No-op if absent.
	Remove(ctx context.Context, id string) error
	// List returns favorites in the order they were added.
	List(ctx context.Context) ([]model.FavoriteEntry, error)
	// Clear deletes every favorite.
	Clear(ctx context.Context) error
}
