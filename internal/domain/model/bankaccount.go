package model

import "time"

// BankAccount is a payout destination owned by a user.
type BankAccount struct {
	ID            int64
	UserID        int64
	BankName      string
	AccountNumber string
	AccountName   string
	CreatedAt     time.Time
}
