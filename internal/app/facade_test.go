package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	testhelpers "github.com/giftpad/cardmarket/internal/test"
	"github.com/giftpad/cardmarket/internal/usecase"
	"github.com/giftpad/cardmarket/internal/worker"
)

type dispatcherStub struct {
	events []worker.Event
}

func (d *dispatcherStub) Enqueue(e worker.Event) bool {
	d.events = append(d.events, e)
	return true
}

type facadeFixture struct {
	facade        *MarketFacade
	users         *testhelpers.UserRepositoryStub
	pins          *testhelpers.PinRepositoryStub
	sellRequests  *testhelpers.SellRequestRepositoryStub
	withdrawals   *testhelpers.WithdrawalRepositoryStub
	bankAccounts  *testhelpers.BankAccountRepositoryStub
	invitations   *testhelpers.InvitationRepositoryStub
	ledger        *testhelpers.LedgerRepositoryStub
	notifications *testhelpers.NotificationRepositoryStub
	transactions  *testhelpers.TransactionRepositoryStub
	settings      *testhelpers.SettingsRepositoryStub
	dispatcher    *dispatcherStub
}

func newFacade() *facadeFixture {
	f := &facadeFixture{
		users:         testhelpers.NewUserRepositoryStub(),
		pins:          testhelpers.NewPinRepositoryStub(),
		sellRequests:  &testhelpers.SellRequestRepositoryStub{},
		withdrawals:   testhelpers.NewWithdrawalRepositoryStub(),
		bankAccounts:  &testhelpers.BankAccountRepositoryStub{},
		invitations:   testhelpers.NewInvitationRepositoryStub(),
		ledger:        testhelpers.NewLedgerRepositoryStub(),
		notifications: &testhelpers.NotificationRepositoryStub{},
		transactions:  &testhelpers.TransactionRepositoryStub{},
		settings:      testhelpers.NewSettingsRepositoryStub(),
		dispatcher:    &dispatcherStub{},
	}

	settingsUC := usecase.NewSettingsUseCase(f.settings)
	pinsUC := usecase.NewPinUseCase(f.pins, testhelpers.HasherStub{})
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(f.users, f.invitations, settingsUC, pinsUC, testhelpers.HasherStub{}, strategy)
	sellUC := usecase.NewSellRequestUseCase(f.sellRequests, settingsUC)
	withdrawalsUC := usecase.NewWithdrawalUseCase(f.withdrawals, pinsUC)
	bankUC := usecase.NewBankAccountUseCase(f.bankAccounts)
	invitationsUC := usecase.NewInvitationUseCase(f.invitations, f.users)
	ledgerUC := usecase.NewLedgerUseCase(f.ledger)
	notificationsUC := usecase.NewNotificationUseCase(f.notifications)
	transactionsUC := usecase.NewTransactionUseCase(f.transactions)

	f.facade = NewMarketFacade(authUC, pinsUC, sellUC, withdrawalsUC, bankUC,
		invitationsUC, ledgerUC, notificationsUC, transactionsUC, settingsUC, f.dispatcher)
	return f
}

func TestMarketFacadeAuth(t *testing.T) {
	f := newFacade()
	token, err := f.facade.Register(context.Background(), "bob", "bob@example.com", "pass", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := f.users.GetByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Username != "bob" {
		t.Fatalf("unexpected stored username %q", stored.Username)
	}

	token, err = f.facade.Authenticate(context.Background(), "bob@example.com", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	profile, err := f.facade.Profile(context.Background(), stored.ID)
	if err != nil || profile.Email != "bob@example.com" {
		t.Fatalf("unexpected profile %v err=%v", profile, err)
	}
}

func TestMarketFacadePinAndEmail(t *testing.T) {
	f := newFacade()
	user := f.users.Add(&model.User{Username: "bob", Email: "bob@example.com"})

	set, err := f.facade.PinStatus(context.Background(), user.ID)
	if err != nil || set {
		t.Fatalf("expected unset pin, got set=%v err=%v", set, err)
	}
	if err := f.facade.SetPin(context.Background(), user.ID, "1234"); err != nil {
		t.Fatalf("set pin returned error: %v", err)
	}
	if err := f.facade.VerifyPin(context.Background(), user.ID, "1234"); err != nil {
		t.Fatalf("verify pin returned error: %v", err)
	}
	if err := f.facade.ChangePin(context.Background(), user.ID, "1234", "5678"); err != nil {
		t.Fatalf("change pin returned error: %v", err)
	}
	if err := f.facade.VerifyPin(context.Background(), user.ID, "1234"); !errors.Is(err, domainErrors.ErrInvalidPin) {
		t.Fatalf("expected invalid pin after change, got %v", err)
	}

	if err := f.facade.ChangeEmail(context.Background(), user.ID, "5678", "new@example.com"); err != nil {
		t.Fatalf("change email returned error: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email to change, got %q", user.Email)
	}
}

func TestMarketFacadeSellRequests(t *testing.T) {
	f := newFacade()
	f.sellRequests.Items = []model.SellRequest{
		{ID: 1, UserID: 7, Status: model.SellStatusPending},
		{ID: 2, UserID: 8, Status: model.SellStatusDoing},
	}
	f.sellRequests.Next = 3

	created, err := f.facade.SubmitSellRequest(context.Background(), &model.SellRequest{
		UserID:       7,
		GiftCardCode: "AMZN-1",
		Currency:     "USD",
		FaceValue:    100,
		Rate:         0.8,
		Total:        80,
		CardType:     model.CardTypeECard,
		Code:         "SECRET",
	})
	if err != nil || created == nil {
		t.Fatalf("unexpected submit result: %v err=%v", created, err)
	}

	mine, err := f.facade.SellRequests(context.Background(), 7)
	if err != nil || len(mine) != 2 {
		t.Fatalf("expected two requests for user, got %v err=%v", mine, err)
	}
	all, err := f.facade.AllSellRequests(context.Background())
	if err != nil || len(all) != 3 {
		t.Fatalf("expected three requests, got %v err=%v", all, err)
	}

	if _, err := f.facade.UpdateSellRequestStatus(context.Background(), 1, model.SellStatusDoing); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if len(f.sellRequests.UpdateCalls) != 1 {
		t.Fatalf("expected one update call, got %d", len(f.sellRequests.UpdateCalls))
	}

	marked, err := f.facade.MarkSellRequest(context.Background(), 2)
	if err != nil || !marked.Marked {
		t.Fatalf("expected marked request, got %v err=%v", marked, err)
	}
	unmarked, err := f.facade.UnmarkedSellRequests(context.Background())
	if err != nil || len(unmarked) != 2 {
		t.Fatalf("expected two unmarked requests, got %v err=%v", unmarked, err)
	}
}

func TestMarketFacadeWithdrawals(t *testing.T) {
	f := newFacade()
	user := f.users.Add(&model.User{Username: "bob", Email: "bob@example.com"})
	f.withdrawals.Balances[user.ID] = 100
	f.bankAccounts.Items = []model.BankAccount{{ID: 3, UserID: user.ID}}
	if err := f.facade.SetPin(context.Background(), user.ID, "1234"); err != nil {
		t.Fatalf("set pin returned error: %v", err)
	}

	w, err := f.facade.Withdraw(context.Background(), user.ID, 3, 40, "1234")
	if err != nil {
		t.Fatalf("withdraw returned error: %v", err)
	}
	if f.withdrawals.Balances[user.ID] != 60 {
		t.Fatalf("expected balance 60 after debit, got %v", f.withdrawals.Balances[user.ID])
	}

	mine, err := f.facade.Withdrawals(context.Background(), user.ID)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected one withdrawal, got %v err=%v", mine, err)
	}
	all, err := f.facade.AllWithdrawals(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one withdrawal overall, got %v err=%v", all, err)
	}

	if _, err := f.facade.MarkWithdrawal(context.Background(), w.ID); err != nil {
		t.Fatalf("mark returned error: %v", err)
	}
}

func TestMarketFacadeWithdrawalCompletionNotifies(t *testing.T) {
	f := newFacade()
	user := f.users.Add(&model.User{Username: "bob", Email: "bob@example.com"})
	f.withdrawals.Balances[user.ID] = 100
	f.bankAccounts.Items = []model.BankAccount{{ID: 3, UserID: user.ID}}
	if err := f.facade.SetPin(context.Background(), user.ID, "1234"); err != nil {
		t.Fatalf("set pin returned error: %v", err)
	}
	w, err := f.facade.Withdraw(context.Background(), user.ID, 3, 40, "1234")
	if err != nil {
		t.Fatalf("withdraw returned error: %v", err)
	}

	updated, err := f.facade.UpdateWithdrawalStatus(context.Background(), w.ID, model.WithdrawalStatusCompleted, nil)
	if err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if updated.Status != model.WithdrawalStatusCompleted {
		t.Fatalf("unexpected status %q", updated.Status)
	}
	if len(f.dispatcher.events) != 1 {
		t.Fatalf("expected one notification event, got %d", len(f.dispatcher.events))
	}
	event := f.dispatcher.events[0]
	if event.UserID != user.ID || event.Kind != model.NotificationKindWithdrawal || !event.SendEmail {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestMarketFacadeWithdrawalCompletionNotifiesOnce(t *testing.T) {
	f := newFacade()
	user := f.users.Add(&model.User{Username: "bob", Email: "bob@example.com"})
	f.withdrawals.Balances[user.ID] = 100
	f.bankAccounts.Items = []model.BankAccount{{ID: 3, UserID: user.ID}}
	if err := f.facade.SetPin(context.Background(), user.ID, "1234"); err != nil {
		t.Fatalf("set pin returned error: %v", err)
	}
	w, err := f.facade.Withdraw(context.Background(), user.ID, 3, 40, "1234")
	if err != nil {
		t.Fatalf("withdraw returned error: %v", err)
	}
	if _, err := f.facade.UpdateWithdrawalStatus(context.Background(), w.ID, model.WithdrawalStatusCompleted, nil); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}

	// An admin retrying the settlement gets the same withdrawal back
	// without a second notification.
	updated, err := f.facade.UpdateWithdrawalStatus(context.Background(), w.ID, model.WithdrawalStatusCompleted, nil)
	if err != nil {
		t.Fatalf("repeated update returned error: %v", err)
	}
	if updated.Status != model.WithdrawalStatusCompleted {
		t.Fatalf("unexpected status %q", updated.Status)
	}
	if len(f.dispatcher.events) != 1 {
		t.Fatalf("expected one notification event after retry, got %d", len(f.dispatcher.events))
	}
}

func TestMarketFacadeWithdrawalFailureDoesNotNotify(t *testing.T) {
	f := newFacade()
	user := f.users.Add(&model.User{Username: "bob", Email: "bob@example.com"})
	f.withdrawals.Balances[user.ID] = 100
	f.bankAccounts.Items = []model.BankAccount{{ID: 3, UserID: user.ID}}
	if err := f.facade.SetPin(context.Background(), user.ID, "1234"); err != nil {
		t.Fatalf("set pin returned error: %v", err)
	}
	w, err := f.facade.Withdraw(context.Background(), user.ID, 3, 40, "1234")
	if err != nil {
		t.Fatalf("withdraw returned error: %v", err)
	}

	comment := "bank rejected transfer"
	updated, err := f.facade.UpdateWithdrawalStatus(context.Background(), w.ID, model.WithdrawalStatusFailed, &comment)
	if err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if updated.AdminComment != comment {
		t.Fatalf("expected admin comment to be stored, got %q", updated.AdminComment)
	}
	if f.withdrawals.Balances[user.ID] != 100 {
		t.Fatalf("expected refund to restore balance, got %v", f.withdrawals.Balances[user.ID])
	}
	if len(f.dispatcher.events) != 0 {
		t.Fatalf("expected no notification events, got %d", len(f.dispatcher.events))
	}
}

func TestMarketFacadeBankAccounts(t *testing.T) {
	f := newFacade()
	acc, err := f.facade.AddBankAccount(context.Background(), 1, "First Bank", "0123456789", "Bob Smith")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	list, err := f.facade.BankAccounts(context.Background(), 1)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one account, got %v err=%v", list, err)
	}
	if err := f.facade.DeleteBankAccount(context.Background(), acc.ID, 1); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
}

func TestMarketFacadeInvitations(t *testing.T) {
	f := newFacade()
	f.users.Add(&model.User{Username: "bob", Email: "bob@example.com"})

	inv, err := f.facade.InvitationCode(context.Background(), 1)
	if err != nil {
		t.Fatalf("code returned error: %v", err)
	}
	valid, err := f.facade.ValidateInvitationCode(context.Background(), inv.Code)
	if err != nil || !valid {
		t.Fatalf("expected code to validate, got valid=%v err=%v", valid, err)
	}
	valid, err = f.facade.ValidateInvitationCode(context.Background(), "pad99999999")
	if err != nil || valid {
		t.Fatalf("expected unknown code to be invalid, got valid=%v err=%v", valid, err)
	}

	byEmail, err := f.facade.InvitationCodeForEmail(context.Background(), "bob@example.com")
	if err != nil || byEmail.Code != inv.Code {
		t.Fatalf("expected the same code by email, got %v err=%v", byEmail, err)
	}
	if _, err := f.facade.InvitationCodeForEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown email, got %v", err)
	}
}

func TestMarketFacadeNotificationsAndLedger(t *testing.T) {
	f := newFacade()

	n, err := f.facade.BroadcastNotification(context.Background(), "Rates updated", "USD rate is now 0.82", model.NotificationKindPriceUpdate, "/rates")
	if err != nil {
		t.Fatalf("broadcast returned error: %v", err)
	}
	list, err := f.facade.Notifications(context.Background(), 5)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected broadcast to be visible, got %v err=%v", list, err)
	}
	read, err := f.facade.ReadNotification(context.Background(), n.ID, 5)
	if err != nil || !read.Read {
		t.Fatalf("expected notification to be read, got %v err=%v", read, err)
	}

	if err := f.facade.AdjustBalance(context.Background(), 1, 50, "promo credit"); err != nil {
		t.Fatalf("adjust returned error: %v", err)
	}
	if f.ledger.Balances[1] != 50 {
		t.Fatalf("expected balance 50 after credit, got %v", f.ledger.Balances[1])
	}

	f.transactions.Items = []model.Transaction{{ID: 1, UserID: 1, Type: model.TransactionAdminAdjustment, Amount: 50}}
	history, err := f.facade.Transactions(context.Background(), 1)
	if err != nil || len(history) != 1 {
		t.Fatalf("expected one transaction, got %v err=%v", history, err)
	}
}

func TestMarketFacadeSettings(t *testing.T) {
	f := newFacade()

	if err := f.facade.SetReferralBonus(context.Background(), 500); err != nil {
		t.Fatalf("set referral bonus returned error: %v", err)
	}
	amount, err := f.facade.ReferralBonus(context.Background())
	if err != nil || amount != 500 {
		t.Fatalf("expected bonus 500, got %v err=%v", amount, err)
	}

	custom := model.TierTable{
		{Level: 1, Min: 0, Max: 1000, Bonus: 0},
		{Level: 2, Min: 1000, Max: 0, Bonus: 50},
	}
	if err := f.facade.SetTierTable(context.Background(), custom); err != nil {
		t.Fatalf("set tier table returned error: %v", err)
	}
	table, err := f.facade.TierTable(context.Background())
	if err != nil || len(table) != 2 || table[1].Bonus != 50 {
		t.Fatalf("expected custom table, got %v err=%v", table, err)
	}
}
