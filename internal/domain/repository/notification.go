package repository

import (
	"context"

	"github.com/giftpad/cardmarket/internal/domain/model"
)

// NotificationRepository describes persistence operations with in-app
// notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	// ListForUser returns the user's notifications plus broadcasts, newest
	// first.
	ListForUser(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error)
}
