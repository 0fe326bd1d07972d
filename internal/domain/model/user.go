package model

import "time"

// User represents a registered customer of the gift-card marketplace.
type User struct {
	ID            int64
	Username      string
	Email         string
	PasswordHash  string
	IsAdmin       bool
	Balance       float64
	TotalSold     float64
	Level         int
	LevelBonus    float64
	ReferralBonus float64
	InvitedBy     *int64
	CreatedAt     time.Time
	LastLogin     *time.Time
}
