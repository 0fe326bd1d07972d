package repository

import "context"

// PinRepository stores one hashed transaction PIN per user.
type PinRepository interface {
	GetHash(ctx context.Context, userID int64) (string, error)
	Upsert(ctx context.Context, userID int64, pinHash string) error
}
