// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// HistoryStore defines the driven port for generation history persistence.
// Entries are returned newest first.
type HistoryStore interface {
	// Add persists the entry together with its batch of results and returns
	// the assigned entry ID.
	Add(ctx context.Context, entry model.HistoryEntry) (int64, error)
	// List returns all stored entries, newest first, with their results.
	List(ctx context.Context) ([]model.HistoryEntry, error)
	// Trim deletes everything but the newest max entries.
	Trim(ctx context.Context, max int) error
	// Clear deletes every entry.
	Clear(ctx context.Context) error
}
