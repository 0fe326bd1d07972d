package dto

// BankAccountRequest describes a new payout account payload.
type BankAccountRequest struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// BankAccountResponse describes a stored payout account.
type BankAccountResponse struct {
	ID            int64  `json:"id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}
