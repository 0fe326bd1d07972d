package usecase

import (
	"context"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// WithdrawalUseCase encapsulates the withdrawal lifecycle.
type WithdrawalUseCase struct {
	withdrawals repository.WithdrawalRepository
	pins        *PinUseCase
}

// NewWithdrawalUseCase constructs WithdrawalUseCase.
func NewWithdrawalUseCase(withdrawals repository.WithdrawalRepository, pins *PinUseCase) *WithdrawalUseCase {
	return &WithdrawalUseCase{withdrawals: withdrawals, pins: pins}
}

// Create verifies the PIN and opens a pending withdrawal. The balance is
// debited in the same transaction that records the withdrawal, so a failure
// anywhere leaves no partial effect.
func (u *WithdrawalUseCase) Create(ctx context.Context, userID, bankAccountID int64, amount float64, pin string) (*model.Withdrawal, error) {
	if err := u.pins.Verify(ctx, userID, pin); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.withdrawals.Create(ctx, userID, bankAccountID, amount)
}

// ListByUser returns the user's withdrawals, newest first.
func (u *WithdrawalUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	return u.withdrawals.ListByUser(ctx, userID)
}

// ListAll returns every withdrawal for admin review.
func (u *WithdrawalUseCase) ListAll(ctx context.Context) ([]model.Withdrawal, error) {
	return u.withdrawals.ListAll(ctx)
}

// UpdateStatus settles a pending withdrawal as completed or failed. A
// failed settlement credits the debited amount back to the user. The bool
// reports whether the call transitioned the withdrawal; a repeated request
// for the current status returns false.
func (u *WithdrawalUseCase) UpdateStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, bool, error) {
	if !status.Valid() || status == model.WithdrawalStatusPending {
		return nil, false, domainErrors.ErrInvalidState
	}
	return u.withdrawals.UpdateStatus(ctx, id, status, adminComment)
}

// Mark sets the admin triage flag, settable at any state.
func (u *WithdrawalUseCase) Mark(ctx context.Context, id int64) (*model.Withdrawal, error) {
	return u.withdrawals.SetMarked(ctx, id)
}
