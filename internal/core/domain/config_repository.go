package domain

import "context"

// ConfigRepository is the abstraction for any kind of database intended to
// persist the singleton marketplace Config.
type ConfigRepository interface {
	// InitConfig stores the config, failing with ErrStateAlreadyInitialized
	// if one has been stored before.
	InitConfig(ctx context.Context, config Config) error
	// GetConfig returns the stored config, failing with
	// ErrInvalidStateAccount if the marketplace was never initialized.
	GetConfig(ctx context.Context) (*Config, error)
}
