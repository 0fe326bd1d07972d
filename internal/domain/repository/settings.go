package repository

import "context"

// SettingsRepository is a key-value store for admin-mutable configuration.
// Values are JSON-encoded; Get returns ErrNotFound for unset keys.
type SettingsRepository interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any) error
}
