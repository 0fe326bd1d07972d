package dto

import "time"

// TransactionResponse describes one ledger event.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdjustBalanceRequest describes an admin balance correction. Positive
// amounts credit the user, negative amounts debit.
type AdjustBalanceRequest struct {
	Amount  float64 `json:"amount"`
	Details string  `json:"details"`
}
