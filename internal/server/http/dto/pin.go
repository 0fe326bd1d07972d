package dto

// PinStatusResponse reports whether a transaction PIN is configured.
type PinStatusResponse struct {
	Set bool `json:"set"`
}

// SetPinRequest carries the initial PIN.
type SetPinRequest struct {
	Pin string `json:"pin"`
}

// ChangePinRequest carries a PIN rotation.
type ChangePinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
}

// VerifyPinRequest carries a PIN check.
type VerifyPinRequest struct {
	Pin string `json:"pin"`
}
