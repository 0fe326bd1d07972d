package dto

import "time"

// NotificationResponse describes an in-app notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// BroadcastRequest describes an admin broadcast payload.
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Link    string `json:"link,omitempty"`
}
