package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// LedgerRepository applies atomic balance mutations. Concurrent operations
// on the same user serialize; every mutation records exactly one ledger
// event tied to its cause.
type LedgerRepository interface {
	Credit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error
	// Debit fails with ErrInsufficientBalance when amount exceeds the
	// current balance and applies nothing.
	Debit(ctx context.Context, userID int64, amount float64, cause model.TransactionType, details string) error
}
