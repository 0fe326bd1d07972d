package dto

// InvitationResponse carries the user's referral code.
type InvitationResponse struct {
	Code string `json:"code"`
}

// AdminInvitationRequest identifies the user whose code an admin wants.
type AdminInvitationRequest struct {
	Email string `json:"email"`
}

// InvitationValidationResponse reports whether a referral code exists.
type InvitationValidationResponse struct {
	Valid bool `json:"valid"`
}
