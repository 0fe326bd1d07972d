package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Ledger() LedgerRepository
	SellRequests() SellRequestRepository
	Withdrawals() WithdrawalRepository
	BankAccounts() BankAccountRepository
	Invitations() InvitationRepository
	Pins() PinRepository
	Notifications() NotificationRepository
	Transactions() TransactionRepository
	Settings() SettingsRepository
}
