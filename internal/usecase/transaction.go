package usecase

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// TransactionUseCase exposes the per-user ledger event history.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
}

// NewTransactionUseCase constructs TransactionUseCase.
func NewTransactionUseCase(transactions repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{transactions: transactions}
}

// History returns the user's ledger events, newest first.
func (u *TransactionUseCase) History(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return u.transactions.ListByUser(ctx, userID)
}
