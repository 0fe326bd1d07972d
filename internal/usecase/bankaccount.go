package usecase

import (
	"context"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// maxBankAccounts caps payout destinations per user.
const maxBankAccounts = 2

// BankAccountUseCase manages payout destinations.
type BankAccountUseCase struct {
	accounts repository.BankAccountRepository
}

// NewBankAccountUseCase constructs BankAccountUseCase.
func NewBankAccountUseCase(accounts repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{accounts: accounts}
}

// Add registers a bank account for the user, bounded by maxBankAccounts.
func (u *BankAccountUseCase) Add(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error) {
	if bankName == "" || accountNumber == "" || accountName == "" {
		return nil, domainErrors.ErrValidation
	}
	count, err := u.accounts.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= maxBankAccounts {
		return nil, domainErrors.ErrValidation
	}
	return u.accounts.Create(ctx, userID, bankName, accountNumber, accountName)
}

// List returns the user's bank accounts.
func (u *BankAccountUseCase) List(ctx context.Context, userID int64) ([]model.BankAccount, error) {
	return u.accounts.ListByUser(ctx, userID)
}

// Delete removes a bank account owned by the user.
func (u *BankAccountUseCase) Delete(ctx context.Context, id, userID int64) error {
	return u.accounts.Delete(ctx, id, userID)
}
