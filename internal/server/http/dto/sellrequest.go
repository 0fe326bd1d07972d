package dto

import "time"

// SellRequestResponse describes a sell request in API responses.
type SellRequestResponse struct {
	ID           int64     `json:"id"`
	GiftCardCode string    `json:"giftCardCode"`
	Currency     string    `json:"currency"`
	FaceValue    float64   `json:"faceValue"`
	Rate         float64   `json:"rate"`
	Total        float64   `json:"total"`
	CardType     string    `json:"cardType"`
	Images       []string  `json:"images,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UpdateSellRequestStatusRequest carries an admin status transition.
type UpdateSellRequestStatusRequest struct {
	Status string `json:"status"`
}
