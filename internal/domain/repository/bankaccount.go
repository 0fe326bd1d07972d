package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// BankAccountRepository describes persistence operations with payout accounts.
type BankAccountRepository interface {
	Create(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error)
	GetForUser(ctx context.Context, id, userID int64) (*model.BankAccount, error)
	ListByUser(ctx context.Context, userID int64) ([]model.BankAccount, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	Delete(ctx context.Context, id, userID int64) error
}
