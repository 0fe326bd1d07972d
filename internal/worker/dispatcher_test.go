package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/giftpad/cardmarket/internal/domain/model"
	testhelpers "github.com/giftpad/cardmarket/internal/test"
)

func newTestDispatcher(users *testhelpers.UserRepositoryStub, notifications *testhelpers.NotificationRepositoryStub, mail *testhelpers.MailerStub) *Dispatcher {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewDispatcher(users, notifications, mail, 1, 4, time.Second, logger)
}

func TestNewDispatcherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	d := NewDispatcher(testhelpers.NewUserRepositoryStub(), &testhelpers.NotificationRepositoryStub{}, &testhelpers.MailerStub{}, 0, 0, 0, logger)
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if cap(d.jobs) != 1 {
		t.Fatalf("expected queue size default to workers, got %d", cap(d.jobs))
	}
	if d.timeout <= 0 {
		t.Fatalf("expected positive default timeout, got %v", d.timeout)
	}
}

func TestDispatcherDeliversNotificationAndEmail(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Add(&model.User{ID: 7, Username: "seller", Email: "seller@example.com"})
	notifications := &testhelpers.NotificationRepositoryStub{}
	mail := &testhelpers.MailerStub{}

	d := newTestDispatcher(users, notifications, mail)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	ok := d.Enqueue(Event{
		UserID:    7,
		Kind:      model.NotificationKindWithdrawal,
		Title:     "Withdrawal completed",
		Body:      "Your payout of 5000.00 was sent.",
		Link:      "/wallet",
		SendEmail: true,
	})
	if !ok {
		t.Fatal("enqueue rejected event")
	}

	deadline := time.After(500 * time.Millisecond)
	for {
		mail.Lock()
		delivered := len(mail.Sent) > 0
		mail.Unlock()
		if delivered {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for delivery")
		case <-time.After(10 * time.Millisecond):
		}
	}
	d.Stop()

	notifications.Lock()
	defer notifications.Unlock()
	if len(notifications.Items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications.Items))
	}
	n := notifications.Items[0]
	if n.UserID == nil || *n.UserID != 7 {
		t.Fatalf("notification bound to wrong user: %v", n.UserID)
	}
	if n.Kind != model.NotificationKindWithdrawal || n.Link != "/wallet" {
		t.Fatalf("unexpected notification %+v", n)
	}

	mail.Lock()
	defer mail.Unlock()
	if mail.Sent[0].To != "seller@example.com" {
		t.Fatalf("email sent to %q", mail.Sent[0].To)
	}
	if mail.Sent[0].Subject != "Withdrawal completed" {
		t.Fatalf("unexpected subject %q", mail.Sent[0].Subject)
	}
}

func TestDispatcherSkipsEmailWhenNotRequested(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Add(&model.User{ID: 3, Email: "user@example.com"})
	notifications := &testhelpers.NotificationRepositoryStub{}
	mail := &testhelpers.MailerStub{}

	d := newTestDispatcher(users, notifications, mail)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(Event{UserID: 3, Kind: model.NotificationKindNews, Title: "Rates updated"})

	deadline := time.After(500 * time.Millisecond)
	for {
		notifications.Lock()
		created := len(notifications.Items) > 0
		notifications.Unlock()
		if created {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for notification")
		case <-time.After(10 * time.Millisecond):
		}
	}
	d.Stop()

	mail.Lock()
	defer mail.Unlock()
	if len(mail.Sent) != 0 {
		t.Fatalf("expected no email, got %d", len(mail.Sent))
	}
}

func TestDispatcherEnqueueDropsWhenQueueFull(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	d := NewDispatcher(testhelpers.NewUserRepositoryStub(), &testhelpers.NotificationRepositoryStub{}, &testhelpers.MailerStub{}, 1, 1, time.Second, logger)

	// Not started: the single queue slot fills and the next event drops.
	if !d.Enqueue(Event{UserID: 1}) {
		t.Fatal("first enqueue should succeed")
	}
	if d.Enqueue(Event{UserID: 2}) {
		t.Fatal("second enqueue should drop")
	}
}
