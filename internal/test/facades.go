package test

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// AuthFacadeStub fakes registration and login flows.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, error)
}

// Register returns stub token unless overridden.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password, invitationCode string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password, invitationCode)
	}
	return "token", nil
}

// Authenticate returns stub token unless overridden.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken resolves user id 1 unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// ProfileFacadeStub fakes account lookups and email changes.
type ProfileFacadeStub struct {
	ProfileFn     func(context.Context, int64) (*model.User, error)
	ChangeEmailFn func(context.Context, int64, string, string) error
}

// Profile returns a minimal user unless overridden.
func (s ProfileFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID}, nil
}

// ChangeEmail succeeds unless overridden.
func (s ProfileFacadeStub) ChangeEmail(ctx context.Context, userID int64, pin, newEmail string) error {
	if s.ChangeEmailFn != nil {
		return s.ChangeEmailFn(ctx, userID, pin, newEmail)
	}
	return nil
}

// PinFacadeStub fakes PIN management.
type PinFacadeStub struct {
	StatusFn func(context.Context, int64) (bool, error)
	SetFn    func(context.Context, int64, string) error
	ChangeFn func(context.Context, int64, string, string) error
	VerifyFn func(context.Context, int64, string) error
}

// PinStatus reports an unset PIN unless overridden.
func (s PinFacadeStub) PinStatus(ctx context.Context, userID int64) (bool, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, userID)
	}
	return false, nil
}

// SetPin succeeds unless overridden.
func (s PinFacadeStub) SetPin(ctx context.Context, userID int64, pin string) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, userID, pin)
	}
	return nil
}

// ChangePin succeeds unless overridden.
func (s PinFacadeStub) ChangePin(ctx context.Context, userID int64, currentPin, newPin string) error {
	if s.ChangeFn != nil {
		return s.ChangeFn(ctx, userID, currentPin, newPin)
	}
	return nil
}

// VerifyPin succeeds unless overridden.
func (s PinFacadeStub) VerifyPin(ctx context.Context, userID int64, pin string) error {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, userID, pin)
	}
	return nil
}

// SellRequestFacadeStub fakes sell-request operations.
type SellRequestFacadeStub struct {
	SubmitFn       func(context.Context, *model.SellRequest) (*model.SellRequest, error)
	ListFn         func(context.Context, int64) ([]model.SellRequest, error)
	ListAllFn      func(context.Context) ([]model.SellRequest, error)
	ListUnmarkedFn func(context.Context) ([]model.SellRequest, error)
	UpdateStatusFn func(context.Context, int64, model.SellRequestStatus) (*model.SellRequest, error)
	MarkFn         func(context.Context, int64) (*model.SellRequest, error)
}

// SubmitSellRequest echoes the request with an id unless overridden.
func (s SellRequestFacadeStub) SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, req)
	}
	out := *req
	out.ID = 1
	out.Status = model.SellStatusPending
	return &out, nil
}

// SellRequests returns nil unless overridden.
func (s SellRequestFacadeStub) SellRequests(ctx context.Context, userID int64) ([]model.SellRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// AllSellRequests returns nil unless overridden.
func (s SellRequestFacadeStub) AllSellRequests(ctx context.Context) ([]model.SellRequest, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

// UnmarkedSellRequests returns nil unless overridden.
func (s SellRequestFacadeStub) UnmarkedSellRequests(ctx context.Context) ([]model.SellRequest, error) {
	if s.ListUnmarkedFn != nil {
		return s.ListUnmarkedFn(ctx)
	}
	return nil, nil
}

// UpdateSellRequestStatus echoes the transition unless overridden.
func (s SellRequestFacadeStub) UpdateSellRequestStatus(ctx context.Context, id int64, status model.SellRequestStatus) (*model.SellRequest, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.SellRequest{ID: id, Status: status}, nil
}

// MarkSellRequest returns a marked request unless overridden.
func (s SellRequestFacadeStub) MarkSellRequest(ctx context.Context, id int64) (*model.SellRequest, error) {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, id)
	}
	return &model.SellRequest{ID: id, Marked: true}, nil
}

// WithdrawalFacadeStub fakes payout operations.
type WithdrawalFacadeStub struct {
	WithdrawFn     func(context.Context, int64, int64, float64, string) (*model.Withdrawal, error)
	ListFn         func(context.Context, int64) ([]model.Withdrawal, error)
	ListAllFn      func(context.Context) ([]model.Withdrawal, error)
	UpdateStatusFn func(context.Context, int64, model.WithdrawalStatus, *string) (*model.Withdrawal, error)
	MarkFn         func(context.Context, int64) (*model.Withdrawal, error)
}

// Withdraw returns a pending withdrawal unless overridden.
func (s WithdrawalFacadeStub) Withdraw(ctx context.Context, userID, bankAccountID int64, amount float64, pin string) (*model.Withdrawal, error) {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, bankAccountID, amount, pin)
	}
	return &model.Withdrawal{ID: 1, UserID: userID, BankAccountID: bankAccountID, Amount: amount, Status: model.WithdrawalStatusPending}, nil
}

// Withdrawals returns nil unless overridden.
func (s WithdrawalFacadeStub) Withdrawals(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// AllWithdrawals returns nil unless overridden.
func (s WithdrawalFacadeStub) AllWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

// UpdateWithdrawalStatus echoes the transition unless overridden.
func (s WithdrawalFacadeStub) UpdateWithdrawalStatus(ctx context.Context, id int64, status model.WithdrawalStatus, adminComment *string) (*model.Withdrawal, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, adminComment)
	}
	w := &model.Withdrawal{ID: id, Status: status}
	if adminComment != nil {
		w.AdminComment = *adminComment
	}
	return w, nil
}

// MarkWithdrawal returns a marked withdrawal unless overridden.
func (s WithdrawalFacadeStub) MarkWithdrawal(ctx context.Context, id int64) (*model.Withdrawal, error) {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, id)
	}
	return &model.Withdrawal{ID: id, Marked: true}, nil
}

// BankAccountFacadeStub fakes payout account management.
type BankAccountFacadeStub struct {
	AddFn    func(context.Context, int64, string, string, string) (*model.BankAccount, error)
	ListFn   func(context.Context, int64) ([]model.BankAccount, error)
	DeleteFn func(context.Context, int64, int64) error
}

// AddBankAccount returns the stored account unless overridden.
func (s BankAccountFacadeStub) AddBankAccount(ctx context.Context, userID int64, bankName, accountNumber, accountName string) (*model.BankAccount, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, bankName, accountNumber, accountName)
	}
	return &model.BankAccount{ID: 1, UserID: userID, BankName: bankName, AccountNumber: accountNumber, AccountName: accountName}, nil
}

// BankAccounts returns nil unless overridden.
func (s BankAccountFacadeStub) BankAccounts(ctx context.Context, userID int64) ([]model.BankAccount, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// DeleteBankAccount succeeds unless overridden.
func (s BankAccountFacadeStub) DeleteBankAccount(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

// InvitationFacadeStub fakes referral code operations.
type InvitationFacadeStub struct {
	CodeFn         func(context.Context, int64) (*model.InvitationCode, error)
	CodeForEmailFn func(context.Context, string) (*model.InvitationCode, error)
	ValidateFn     func(context.Context, string) (bool, error)
}

// InvitationCode returns a fixed code unless overridden.
func (s InvitationFacadeStub) InvitationCode(ctx context.Context, userID int64) (*model.InvitationCode, error) {
	if s.CodeFn != nil {
		return s.CodeFn(ctx, userID)
	}
	return &model.InvitationCode{ID: 1, UserID: userID, Code: "pad00000001"}, nil
}

// InvitationCodeForEmail returns a fixed code unless overridden.
func (s InvitationFacadeStub) InvitationCodeForEmail(ctx context.Context, email string) (*model.InvitationCode, error) {
	if s.CodeForEmailFn != nil {
		return s.CodeForEmailFn(ctx, email)
	}
	return &model.InvitationCode{ID: 1, UserID: 1, Code: "pad00000001"}, nil
}

// ValidateInvitationCode reports valid unless overridden.
func (s InvitationFacadeStub) ValidateInvitationCode(ctx context.Context, code string) (bool, error) {
	if s.ValidateFn != nil {
		return s.ValidateFn(ctx, code)
	}
	return true, nil
}

// NotificationFacadeStub fakes in-app notifications.
type NotificationFacadeStub struct {
	ListFn      func(context.Context, int64) ([]model.Notification, error)
	ReadFn      func(context.Context, int64, int64) (*model.Notification, error)
	BroadcastFn func(context.Context, string, string, model.NotificationKind, string) (*model.Notification, error)
}

// Notifications returns nil unless overridden.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// ReadNotification returns a read notification unless overridden.
func (s NotificationFacadeStub) ReadNotification(ctx context.Context, id, userID int64) (*model.Notification, error) {
	if s.ReadFn != nil {
		return s.ReadFn(ctx, id, userID)
	}
	return &model.Notification{ID: id, Read: true}, nil
}

// BroadcastNotification echoes the broadcast unless overridden.
func (s NotificationFacadeStub) BroadcastNotification(ctx context.Context, title, message string, kind model.NotificationKind, link string) (*model.Notification, error) {
	if s.BroadcastFn != nil {
		return s.BroadcastFn(ctx, title, message, kind, link)
	}
	return &model.Notification{ID: 1, Title: title, Message: message, Kind: kind, Link: link}, nil
}

// TransactionFacadeStub fakes the ledger history.
type TransactionFacadeStub struct {
	ListFn func(context.Context, int64) ([]model.Transaction, error)
}

// Transactions returns nil unless overridden.
func (s TransactionFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// AdminFacadeStub fakes settings and balance corrections.
type AdminFacadeStub struct {
	AdjustFn           func(context.Context, int64, float64, string) error
	ReferralBonusFn    func(context.Context) (float64, error)
	SetReferralBonusFn func(context.Context, float64) error
	TierTableFn        func(context.Context) (model.TierTable, error)
	SetTierTableFn     func(context.Context, model.TierTable) error
}

// AdjustBalance succeeds unless overridden.
func (s AdminFacadeStub) AdjustBalance(ctx context.Context, userID int64, amount float64, details string) error {
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, userID, amount, details)
	}
	return nil
}

// ReferralBonus returns zero unless overridden.
func (s AdminFacadeStub) ReferralBonus(ctx context.Context) (float64, error) {
	if s.ReferralBonusFn != nil {
		return s.ReferralBonusFn(ctx)
	}
	return 0, nil
}

// SetReferralBonus succeeds unless overridden.
func (s AdminFacadeStub) SetReferralBonus(ctx context.Context, value float64) error {
	if s.SetReferralBonusFn != nil {
		return s.SetReferralBonusFn(ctx, value)
	}
	return nil
}

// TierTable returns the default brackets unless overridden.
func (s AdminFacadeStub) TierTable(ctx context.Context) (model.TierTable, error) {
	if s.TierTableFn != nil {
		return s.TierTableFn(ctx)
	}
	return model.DefaultTierTable(), nil
}

// SetTierTable succeeds unless overridden.
func (s AdminFacadeStub) SetTierTable(ctx context.Context, table model.TierTable) error {
	if s.SetTierTableFn != nil {
		return s.SetTierTableFn(ctx, table)
	}
	return nil
}

// MarketFacadeStub bundles every facade stub for router-level tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	PinFacadeStub
	SellRequestFacadeStub
	WithdrawalFacadeStub
	BankAccountFacadeStub
	InvitationFacadeStub
	NotificationFacadeStub
	TransactionFacadeStub
	AdminFacadeStub
}
