package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// InvitationRepository describes persistence operations with referral codes.
type InvitationRepository interface {
	// Create stores a freshly generated code. A code collision surfaces as
	// ErrAlreadyExists so callers can re-resolve with a new code.
	Create(ctx context.Context, userID int64, code string) (*model.InvitationCode, error)
	GetByUser(ctx context.Context, userID int64) (*model.InvitationCode, error)
	GetByCode(ctx context.Context, code string) (*model.InvitationCode, error)
}
