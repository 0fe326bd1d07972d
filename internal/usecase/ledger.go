package usecase

import (
	"context"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// LedgerUseCase exposes balance mutations with amount validation. Positive
// amounts only; direction comes from the operation.
type LedgerUseCase struct {
	ledger repository.LedgerRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(ledger repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger}
}

// Credit increases the user's balance.
func (u *LedgerUseCase) Credit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.ledger.Credit(ctx, userID, amount, cause, details)
}

// Debit decreases the user's balance, failing when it would go negative.
func (u *LedgerUseCase) Debit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error {
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.ledger.Debit(ctx, userID, amount, cause, details)
}

// Adjust applies an admin balance correction. The sign of amount selects
// the direction; zero is rejected.
func (u *LedgerUseCase) Adjust(ctx context.Context, userID int64, amount float64, details string) error {
	switch {
	case amount > 0:
		return u.Credit(ctx, userID, amount, model.TransactionAdminAdjustment, details)
	case amount < 0:
		return u.Debit(ctx, userID, -amount, model.TransactionAdminAdjustment, details)
	default:
		return domainErrors.ErrInvalidAmount
	}
}
