package dto

import "time"

// WithdrawRequest describes a payout request payload.
type WithdrawRequest struct {
	BankAccountID int64   `json:"bankAccountId"`
	Amount        float64 `json:"amount"`
	Pin           string  `json:"pin"`
}

// WithdrawalResponse describes a withdrawal history entry.
type WithdrawalResponse struct {
	ID            int64      `json:"id"`
	BankAccountID int64      `json:"bankAccountId"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	AdminComment  string     `json:"adminComment,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// UpdateWithdrawalStatusRequest carries an admin settlement decision.
type UpdateWithdrawalStatusRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment,omitempty"`
}
