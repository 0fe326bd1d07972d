package model

import "time"

// SellRequestStatus describes the sell-request processing lifecycle.
type SellRequestStatus string

const (
	SellStatusPending   SellRequestStatus = "pending"
	SellStatusDoing     SellRequestStatus = "doing"
	SellStatusCancel    SellRequestStatus = "cancel"
	SellStatusCompleted SellRequestStatus = "completed"
)

// Valid reports whether want is one of the enumerated statuses.
func (s SellRequestStatus) Valid() bool {
	switch s {
	case SellStatusPending, SellStatusDoing, SellStatusCancel, SellStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s SellRequestStatus) Terminal() bool {
	return s == SellStatusCancel || s == SellStatusCompleted
}

// CardType distinguishes redeemable e-cards from physical cards.
type CardType string

const (
	CardTypeECard    CardType = "e-card"
	CardTypePhysical CardType = "physical"
)

// SellRequest describes a user's offer to redeem a gift card for credited value.
type SellRequest struct {
	ID           int64
	UserID       int64
	GiftCardCode string
	Currency     string
	FaceValue    float64
	Rate         float64
	Total        float64
	Code         string
	CardType     CardType
	Images       []string
	Status       SellRequestStatus
	Marked       bool
	CreatedAt    time.Time
}
