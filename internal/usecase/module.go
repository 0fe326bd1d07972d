package usecase

import "go.uber.org/fx"

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewSettingsUseCase,
	NewPinUseCase,
	NewAuthUseCase,
	NewSellRequestUseCase,
	NewWithdrawalUseCase,
	NewInvitationUseCase,
	NewBankAccountUseCase,
	NewLedgerUseCase,
	NewNotificationUseCase,
	NewTransactionUseCase,
)
