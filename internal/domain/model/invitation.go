package model

import "time"

// InvitationCode is a user's unique referral code, generated lazily on
// first request.
type InvitationCode struct {
	ID        int64
	UserID    int64
	Code      string
	CreatedAt time.Time
}
