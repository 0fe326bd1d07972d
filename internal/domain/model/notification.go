package model

import "time"

// NotificationKind categorizes in-app notifications.
type NotificationKind string

const (
	NotificationKindWithdrawal  NotificationKind = "withdrawal"
	NotificationKindPriceUpdate NotificationKind = "price_update"
	NotificationKindNews        NotificationKind = "news"
	NotificationKindGeneral     NotificationKind = "general"
)

// Notification is an in-app message. UserID nil means a broadcast visible
// to every user.
type Notification struct {
	ID        int64
	UserID    *int64
	Title     string
	Message   string
	Kind      NotificationKind
	Link      string
	Read      bool
	CreatedAt time.Time
}
