package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/giftpad/cardmarket/internal/config"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.LedgerRepository { return s.Ledger() },
		func(s *Storage) repository.SellRequestRepository { return s.SellRequests() },
		func(s *Storage) repository.WithdrawalRepository { return s.Withdrawals() },
		func(s *Storage) repository.BankAccountRepository { return s.BankAccounts() },
		func(s *Storage) repository.InvitationRepository { return s.Invitations() },
		func(s *Storage) repository.PinRepository { return s.Pins() },
		func(s *Storage) repository.NotificationRepository { return s.Notifications() },
		func(s *Storage) repository.TransactionRepository { return s.Transactions() },
		func(s *Storage) repository.SettingsRepository { return s.Settings() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
