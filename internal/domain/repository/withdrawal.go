package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// WithdrawalRepository describes persistence operations with withdrawals.
type WithdrawalRepository interface {
	// Create debits amount from the user's balance and records the
	// withdrawal in a single transaction. Either both happen or neither.
	Create(ctx context.Context, userID, bankAccountID int64, amount float64) (*model.Withdrawal, error)
	GetByID(ctx context.Context, id int64) (*model.Withdrawal, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Withdrawal, error)
	ListAll(ctx context.Context) ([]model.Withdrawal, error)
	// UpdateStatus settles a pending withdrawal. Transition to failed
	// credits the debited amount back to the user in the same transaction.
	// The bool reports whether a transition happened; a repeated request
	// for the current status is a no-op and returns false.
	UpdateStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, bool, error)
	SetMarked(ctx context.Context, id int64) (*model.Withdrawal, error)
}
