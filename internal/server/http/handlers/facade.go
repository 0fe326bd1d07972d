package handlers

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password, invitationCode string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// ProfileFacade exposes account state and PIN-gated account changes.
type ProfileFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	ChangeEmail(ctx context.Context, userID int64, pin, newEmail string) error
}

// PinFacade manages the transaction PIN.
type PinFacade interface {
	PinStatus(ctx context.Context, userID int64) (bool, error)
	SetPin(ctx context.Context, userID int64, pin string) error
	ChangePin(ctx context.Context, userID int64, currentPin, newPin string) error
	VerifyPin(ctx context.Context, userID int64, pin string) error
}

// SellRequestFacade encapsulates sell-request operations exposed via HTTP.
type SellRequestFacade interface {
	SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error)
	SellRequests(ctx context.Context, userID int64) ([]model.SellRequest, error)
	AllSellRequests(ctx context.Context) ([]model.SellRequest, error)
	UnmarkedSellRequests(ctx context.Context) ([]model.SellRequest, error)
	UpdateSellRequestStatus(ctx context.Context, id int64, status model.SellRequestStatus) (*model.SellRequest, error)
	MarkSellRequest(ctx context.Context, id int64) (*model.SellRequest, error)
}

// WithdrawalFacade provides payout operations.
type WithdrawalFacade interface {
	Withdraw(ctx context.Context, userID, bankAccountID int64, amount float64, pin string) (*model.Withdrawal, error)
	Withdrawals(ctx context.Context, userID int64) ([]model.Withdrawal, error)
	AllWithdrawals(ctx context.Context) ([]model.Withdrawal, error)
	UpdateWithdrawalStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, error)
	MarkWithdrawal(ctx context.Context, id int64) (*model.Withdrawal, error)
}

// BankAccountFacade manages payout accounts.
type BankAccountFacade interface {
	AddBankAccount(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error)
	BankAccounts(ctx context.Context, userID int64) ([]model.BankAccount, error)
	DeleteBankAccount(ctx context.Context, id, userID int64) error
}

// InvitationFacade exposes referral code operations.
type InvitationFacade interface {
	InvitationCode(ctx context.Context, userID int64) (*model.InvitationCode, error)
	InvitationCodeForEmail(ctx context.Context, email string) (*model.InvitationCode, error)
	ValidateInvitationCode(ctx context.Context, code string) (bool, error)
}

// NotificationFacade exposes in-app notifications.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
	ReadNotification(ctx context.Context, id, userID int64) (*model.Notification, error)
	BroadcastNotification(ctx context.Context, title, message string, kind model.NotificationKind, link string) (*model.Notification, error)
}

// TransactionFacade exposes the per-user ledger history.
type TransactionFacade interface {
	Transactions(ctx context.Context, userID int64) ([]model.Transaction, error)
}

// AdminFacade groups admin-only settings and corrections.
type AdminFacade interface {
	AdjustBalance(ctx context.Context, userID int64, amount float64, details string) error
	ReferralBonus(ctx context.Context) (float64, error)
	SetReferralBonus(ctx context.Context, value float64) error
	TierTable(ctx context.Context) (model.TierTable, error)
	SetTierTable(ctx context.Context, table model.TierTable) error
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	ProfileFacade
	PinFacade
	SellRequestFacade
	WithdrawalFacade
	BankAccountFacade
	InvitationFacade
	NotificationFacade
	TransactionFacade
	AdminFacade
}
