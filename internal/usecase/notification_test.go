package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	"github.com/giftpad/cardmarket/internal/domain/model"
	testhelpers "github.com/giftpad/cardmarket/internal/test"
)

func TestNotificationUseCaseBroadcastAndList(t *testing.T) {
	notifications := &testhelpers.NotificationRepositoryStub{}
	uc := NewNotificationUseCase(notifications)
	ctx := context.Background()

	n, err := uc.Broadcast(ctx, "Rates updated", "New USD rate in effect", model.NotificationKindPriceUpdate, "/rates")
	if err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}
	if n.UserID != nil {
		t.Fatalf("broadcast carries a user id: %+v", n)
	}

	if _, err := uc.Broadcast(ctx, "", "body", model.NotificationKindNews, ""); err != domainErrors.ErrValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := uc.Broadcast(ctx, "title", "", model.NotificationKindNews, ""); err != domainErrors.ErrValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Personal notifications and broadcasts are both visible to the user.
	userID := int64(1)
	if _, err := notifications.Create(ctx, &model.Notification{UserID: &userID, Title: "Withdrawal completed", Message: "paid", Kind: model.NotificationKindWithdrawal}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	list, err := uc.ListForUser(ctx, 1)
	if err != nil || len(list) != 2 {
		t.Fatalf("unexpected result: %v err=%v", list, err)
	}
	other, err := uc.ListForUser(ctx, 2)
	if err != nil || len(other) != 1 {
		t.Fatalf("unexpected result: %v err=%v", other, err)
	}
}

func TestNotificationUseCaseMarkRead(t *testing.T) {
	notifications := &testhelpers.NotificationRepositoryStub{}
	uc := NewNotificationUseCase(notifications)
	ctx := context.Background()

	userID := int64(1)
	seeded, err := notifications.Create(ctx, &model.Notification{UserID: &userID, Title: "t", Message: "m", Kind: model.NotificationKindGeneral})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	n, err := uc.MarkRead(ctx, seeded.ID, 1)
	if err != nil || !n.Read {
		t.Fatalf("unexpected result: %+v err=%v", n, err)
	}
	if _, err := uc.MarkRead(ctx, seeded.ID, 2); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
