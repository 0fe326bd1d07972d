package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	// Create registers a new user. When inviterID is non-nil the referral
	// bonus is applied atomically: the new user's balance and referralBonus
	// start at bonus, and the inviter's balance and referralBonus grow by
	// the same amount, each with its own ledger event.
	Create(ctx context.Context, username, email, passwordHash string, inviterID *int64, bonus float64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	TouchLastLogin(ctx context.Context, id int64) error
}
