package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// SellRequestRepository describes persistence operations with sell requests.
type SellRequestRepository interface {
	Create(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error)
	GetByID(ctx context.Context, id int64) (*model.SellRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]model.SellRequest, error)
	ListAll(ctx context.Context) ([]model.SellRequest, error)
	ListUnmarked(ctx context.Context) ([]model.SellRequest, error)
	// UpdateStatus transitions the request and, on the first transition into
	// completed, credits the owner's totalSold and recomputes level/bonus
	// from tiers in the same transaction. Re-completing an already completed
	// request is rejected with ErrInvalidState and credits nothing.
	UpdateStatus(ctx context.Context, id int64, status model.SellRequestStatus, tiers model.TierTable) (*model.SellRequest, error)
	SetMarked(ctx context.Context, id int64) (*model.SellRequest, error)
}
