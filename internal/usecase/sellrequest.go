package usecase

import (
	"context"
	"math"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// totalEpsilon absorbs float rounding when checking total against
// faceValue * rate.
const totalEpsilon = 0.01

// SellRequestUseCase encapsulates the gift-card sale lifecycle.
type SellRequestUseCase struct {
	requests repository.SellRequestRepository
	settings *SettingsUseCase
}

// NewSellRequestUseCase constructs SellRequestUseCase.
func NewSellRequestUseCase(requests repository.SellRequestRepository, settings *SettingsUseCase) *SellRequestUseCase {
	return &SellRequestUseCase{requests: requests, settings: settings}
}

// Submit validates and stores a new sell request in the pending state.
func (u *SellRequestUseCase) Submit(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	if req.GiftCardCode == "" || req.Currency == "" || req.FaceValue <= 0 || req.Rate <= 0 || req.Total <= 0 {
		return nil, domainErrors.ErrValidation
	}
	if math.Abs(req.Total-req.FaceValue*req.Rate) > totalEpsilon {
		return nil, domainErrors.ErrValidation
	}

	switch req.CardType {
	case model.CardTypeECard:
		if req.Code == "" {
			return nil, domainErrors.ErrValidation
		}
	case model.CardTypePhysical:
		if len(req.Images) == 0 {
			return nil, domainErrors.ErrValidation
		}
		req.Code = ""
	default:
		return nil, domainErrors.ErrValidation
	}

	req.Status = model.SellStatusPending
	return u.requests.Create(ctx, req)
}

// ListByUser returns the user's sell requests, newest first.
func (u *SellRequestUseCase) ListByUser(ctx context.Context, userID int64) ([]model.SellRequest, error) {
	return u.requests.ListByUser(ctx, userID)
}

// ListAll returns every sell request for admin review.
func (u *SellRequestUseCase) ListAll(ctx context.Context) ([]model.SellRequest, error) {
	return u.requests.ListAll(ctx)
}

// ListUnmarked returns sell requests not yet triaged by an admin.
func (u *SellRequestUseCase) ListUnmarked(ctx context.Context) ([]model.SellRequest, error) {
	return u.requests.ListUnmarked(ctx)
}

// UpdateStatus transitions a sell request. The level table is read at the
// point of use so the completion bookkeeping always sees current brackets.
func (u *SellRequestUseCase) UpdateStatus(ctx context.Context, id int64, status model.SellRequestStatus) (*model.SellRequest, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidState
	}
	tiers, err := u.settings.TierTable(ctx)
	if err != nil {
		return nil, err
	}
	return u.requests.UpdateStatus(ctx, id, status, tiers)
}

// Mark sets the admin triage flag. It never affects the workflow status.
func (u *SellRequestUseCase) Mark(ctx context.Context, id int64) (*model.SellRequest, error) {
	return u.requests.SetMarked(ctx, id)
}
