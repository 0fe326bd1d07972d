package dto

import "github.com/giftpad/cardmarket/internal/domain/model"

// ReferralBonusSettings carries the referral bonus amount.
type ReferralBonusSettings struct {
	Amount float64 `json:"amount"`
}

// TierSettings carries the seller level table.
type TierSettings struct {
	Tiers model.TierTable `json:"tiers"`
}
