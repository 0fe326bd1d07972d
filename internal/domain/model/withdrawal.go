package model

import "time"

// WithdrawalStatus describes withdrawal settlement lifecycle.
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusFailed    WithdrawalStatus = "failed"
)

// Valid reports whether s is one of the enumerated statuses.
func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusCompleted, WithdrawalStatusFailed:
		return true
	}
	return false
}

// Withdrawal represents a request to move balance out to a bank account.
// The record existing implies the amount was already debited from the user.
type Withdrawal struct {
	ID            int64
	UserID        int64
	BankAccountID int64
	Amount        float64
	Status        WithdrawalStatus
	AdminComment  string
	Marked        bool
	CreatedAt     time.Time
	CompletedAt   *time.Time
}
