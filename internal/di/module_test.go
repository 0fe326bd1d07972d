package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/giftpad/cardmarket/internal/adapter/filestore"
	"github.com/giftpad/cardmarket/internal/adapter/mailer"
	"github.com/giftpad/cardmarket/internal/app"
	"github.com/giftpad/cardmarket/internal/config"
	"github.com/giftpad/cardmarket/internal/domain/repository"
	"github.com/giftpad/cardmarket/internal/storage/postgres"
	"github.com/giftpad/cardmarket/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		UploadDir:       t.TempDir(),
		NotifyWorkers:   1,
		NotifyQueueSize: 1,
		NotifyTimeout:   time.Millisecond,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repos := test.NewFactoryStub()
	store, err := filestore.NewDiskStore(cfg.UploadDir)
	if err != nil {
		t.Fatalf("disk store: %v", err)
	}

	var facade *app.MarketFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(repos.UsersStub)),
			fx.Replace(repository.LedgerRepository(repos.LedgerStub)),
			fx.Replace(repository.SellRequestRepository(repos.SellRequestsStub)),
			fx.Replace(repository.WithdrawalRepository(repos.WithdrawalsStub)),
			fx.Replace(repository.BankAccountRepository(repos.BankAccountsStub)),
			fx.Replace(repository.InvitationRepository(repos.InvitationsStub)),
			fx.Replace(repository.PinRepository(repos.PinsStub)),
			fx.Replace(repository.NotificationRepository(repos.NotificationsStub)),
			fx.Replace(repository.TransactionRepository(repos.TransactionsStub)),
			fx.Replace(repository.SettingsRepository(repos.SettingsStub)),
			fx.Replace(mailer.Client(&test.MailerStub{})),
			fx.Replace(filestore.Store(store)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected market facade instance")
	}
}
