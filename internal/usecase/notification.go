package usecase

import (
	"context"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// NotificationUseCase manages in-app notifications.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// ListForUser returns the user's notifications plus broadcasts.
func (u *NotificationUseCase) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return u.notifications.ListForUser(ctx, userID)
}

// MarkRead flags a notification visible to the user as read.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	return u.notifications.MarkRead(ctx, id, userID)
}

// Broadcast publishes a notification visible to every user.
func (u *NotificationUseCase) Broadcast(ctx context.Context, title, message string, kind model.NotificationKind, link string) (*model.Notification, error) {
	if title == "" || message == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.notifications.Create(ctx, &model.Notification{Title: title, Message: message, Kind: kind, Link: link})
}
