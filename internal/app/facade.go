package app

import (
	"context"
	"fmt"

	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/usecase"
	"github.com/giftpad/cardmarket/internal/worker"
)

// NotificationDispatcher delivers user-facing events out of band.
type NotificationDispatcher interface {
	Enqueue(worker.Event) bool
}

// MarketFacade aggregates application use cases behind a single surface
// consumed by HTTP handlers.
type MarketFacade struct {
	auth          *usecase.AuthUseCase
	pins          *usecase.PinUseCase
	sellRequests  *usecase.SellRequestUseCase
	withdrawals   *usecase.WithdrawalUseCase
	bankAccounts  *usecase.BankAccountUseCase
	invitations   *usecase.InvitationUseCase
	ledger        *usecase.LedgerUseCase
	notifications *usecase.NotificationUseCase
	transactions  *usecase.TransactionUseCase
	settings      *usecase.SettingsUseCase
	dispatcher    NotificationDispatcher
}

// NewMarketFacade constructs the facade.
func NewMarketFacade(
	auth *usecase.AuthUseCase,
	pins *usecase.PinUseCase,
	sellRequests *usecase.SellRequestUseCase,
	withdrawals *usecase.WithdrawalUseCase,
	bankAccounts *usecase.BankAccountUseCase,
	invitations *usecase.InvitationUseCase,
	ledger *usecase.LedgerUseCase,
	notifications *usecase.NotificationUseCase,
	transactions *usecase.TransactionUseCase,
	settings *usecase.SettingsUseCase,
	dispatcher NotificationDispatcher,
) *MarketFacade {
	return &MarketFacade{
		auth:          auth,
		pins:          pins,
		sellRequests:  sellRequests,
		withdrawals:   withdrawals,
		bankAccounts:  bankAccounts,
		invitations:   invitations,
		ledger:        ledger,
		notifications: notifications,
		transactions:  transactions,
		settings:      settings,
		dispatcher:    dispatcher,
	}
}

func (f *MarketFacade) Register(ctx context.Context, username, email, password, invitationCode string) (string, error) {
	user, err := f.auth.Register(ctx, username, email, password, invitationCode)
	if err != nil {
		return "", err
	}
	return f.auth.IssueToken(user.ID)
}

func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *MarketFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *MarketFacade) ChangeEmail(ctx context.Context, userID int64, pin, newEmail string) error {
	return f.auth.ChangeEmail(ctx, userID, pin, newEmail)
}

func (f *MarketFacade) PinStatus(ctx context.Context, userID int64) (bool, error) {
	return f.pins.Status(ctx, userID)
}

func (f *MarketFacade) SetPin(ctx context.Context, userID int64, pin string) error {
	return f.pins.Set(ctx, userID, pin)
}

func (f *MarketFacade) ChangePin(ctx context.Context, userID int64, currentPin, newPin string) error {
	return f.pins.Change(ctx, userID, currentPin, newPin)
}

func (f *MarketFacade) VerifyPin(ctx context.Context, userID int64, pin string) error {
	return f.pins.Verify(ctx, userID, pin)
}

func (f *MarketFacade) SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	return f.sellRequests.Submit(ctx, req)
}

func (f *MarketFacade) SellRequests(ctx context.Context, userID int64) ([]model.SellRequest, error) {
	return f.sellRequests.ListByUser(ctx, userID)
}

func (f *MarketFacade) AllSellRequests(ctx context.Context) ([]model.SellRequest, error) {
	return f.sellRequests.ListAll(ctx)
}

func (f *MarketFacade) UnmarkedSellRequests(ctx context.Context) ([]model.SellRequest, error) {
	return f.sellRequests.ListUnmarked(ctx)
}

func (f *MarketFacade) UpdateSellRequestStatus(ctx context.Context, id int64, status model.SellRequestStatus) (*model.SellRequest, error) {
	return f.sellRequests.UpdateStatus(ctx, id, status)
}

func (f *MarketFacade) MarkSellRequest(ctx context.Context, id int64) (*model.SellRequest, error) {
	return f.sellRequests.Mark(ctx, id)
}

func (f *MarketFacade) Withdraw(ctx context.Context, userID, bankAccountID int64, amount float64, pin string) (*model.Withdrawal, error) {
	return f.withdrawals.Create(ctx, userID, bankAccountID, amount, pin)
}

func (f *MarketFacade) Withdrawals(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	return f.withdrawals.ListByUser(ctx, userID)
}

func (f *MarketFacade) AllWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	return f.withdrawals.ListAll(ctx)
}

// UpdateWithdrawalStatus settles a withdrawal and, on completion, notifies
// the owner asynchronously. A repeated request for the current status is a
// no-op and must not notify again.
func (f *MarketFacade) UpdateWithdrawalStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, error) {
	w, changed, err := f.withdrawals.UpdateStatus(ctx, id, status, adminComment)
	if err != nil {
		return nil, err
	}
	if changed && w.Status == model.WithdrawalStatusCompleted && f.dispatcher != nil {
		f.dispatcher.Enqueue(worker.Event{
			UserID:    w.UserID,
			Kind:      model.NotificationKindWithdrawal,
			Title:     "Withdrawal completed",
			Body:      fmt.Sprintf("Your withdrawal of %.2f has been paid out.", w.Amount),
			Link:      "/wallet",
			SendEmail: true,
		})
	}
	return w, nil
}

func (f *MarketFacade) MarkWithdrawal(ctx context.Context, id int64) (*model.Withdrawal, error) {
	return f.withdrawals.Mark(ctx, id)
}

func (f *MarketFacade) AddBankAccount(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error) {
	return f.bankAccounts.Add(ctx, userID, bankName, accountNumber, accountName)
}

func (f *MarketFacade) BankAccounts(ctx context.Context, userID int64) ([]model.BankAccount, error) {
	return f.bankAccounts.List(ctx, userID)
}

func (f *MarketFacade) DeleteBankAccount(ctx context.Context, id, userID int64) error {
	return f.bankAccounts.Delete(ctx, id, userID)
}

func (f *MarketFacade) InvitationCode(ctx context.Context, userID int64) (*model.InvitationCode, error) {
	return f.invitations.CodeFor(ctx, userID)
}

func (f *MarketFacade) InvitationCodeForEmail(ctx context.Context, email string) (*model.InvitationCode, error) {
	return f.invitations.CodeForEmail(ctx, email)
}

func (f *MarketFacade) ValidateInvitationCode(ctx context.Context, code string) (bool, error) {
	return f.invitations.Validate(ctx, code)
}

func (f *MarketFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifications.ListForUser(ctx, userID)
}

func (f *MarketFacade) ReadNotification(ctx context.Context, id, userID int64) (*model.Notification, error) {
	return f.notifications.MarkRead(ctx, id, userID)
}

func (f *MarketFacade) BroadcastNotification(ctx context.Context, title, message string, kind model.NotificationKind, link string) (*model.Notification, error) {
	return f.notifications.Broadcast(ctx, title, message, kind, link)
}

func (f *MarketFacade) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return f.transactions.History(ctx, userID)
}

func (f *MarketFacade) AdjustBalance(ctx context.Context, userID int64, amount float64, details string) error {
	return f.ledger.Adjust(ctx, userID, amount, details)
}

func (f *MarketFacade) ReferralBonus(ctx context.Context) (float64, error) {
	return f.settings.ReferralBonus(ctx)
}

func (f *MarketFacade) SetReferralBonus(ctx context.Context, value float64) error {
	return f.settings.SetReferralBonus(ctx, value)
}

func (f *MarketFacade) TierTable(ctx context.Context) (model.TierTable, error) {
	return f.settings.TierTable(ctx)
}

func (f *MarketFacade) SetTierTable(ctx context.Context, table model.TierTable) error {
	return f.settings.SetTierTable(ctx, table)
}
