package dto

import "time"

// ProfileResponse describes the authenticated user's account state.
type ProfileResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Balance       float64    `json:"balance"`
	TotalSold     float64    `json:"totalSold"`
	Level         int        `json:"level"`
	LevelBonus    float64    `json:"levelBonus"`
	ReferralBonus float64    `json:"referralBonus"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
}

// ChangeEmailRequest carries a PIN-gated email update.
type ChangeEmailRequest struct {
	Pin   string `json:"pin"`
	Email string `json:"email"`
}
