package model

import "time"

// TransactionType names the event that caused a balance mutation.
type TransactionType string

const (
	TransactionWithdrawal       TransactionType = "withdrawal"
	TransactionWithdrawalRefund TransactionType = "withdrawal_refund"
	TransactionReferralBonus    TransactionType = "referral_bonus"
	TransactionAdminAdjustment  TransactionType = "admin_adjustment"
	TransactionDeposit          TransactionType = "deposit"
)

// Transaction is one ledger event. Every balance mutation writes exactly
// one transaction row, so credits and debits stay traceable to their cause.
type Transaction struct {
	ID        int64
	UserID    int64
	Type      TransactionType
	Amount    float64
	Details   string
	Status    string
	CreatedAt time.Time
}
