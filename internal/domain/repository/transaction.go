package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// TransactionRepository provides access to the per-user ledger event history.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error)
}
