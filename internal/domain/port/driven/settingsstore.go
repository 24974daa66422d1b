package driven

import (
	"context"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// SettingsStore defines the driven port for user preference persistence.
type SettingsStore interface {
	// GetSettings returns the stored settings. Keys that were never stored
	// take their value from defaults.
	GetSettings(ctx context.Context, defaults model.Settings) (model.Settings, error)
	// SetSettings replaces all stored settings atomically.
	SetSettings(ctx context.Context, settings model.Settings) error
}

// StatsStore defines the driven port for the running generation counter.
type StatsStore interface {
	// TotalGenerated returns the number of credentials generated so far.
	TotalGenerated(ctx context.Context) (int64, error)
	// AddGenerated increments the counter by n and returns the new total.
	AddGenerated(ctx context.Context, n int) (int64, error)
}
