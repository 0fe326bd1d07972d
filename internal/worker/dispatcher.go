package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/giftpad/cardmarket/internal/adapter/mailer"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/domain/repository"
)

// Event describes a user-facing notification to deliver out of band.
type Event struct {
	UserID    int64
	Kind      model.NotificationKind
	Title     string
	Body      string
	Link      string
	SendEmail bool
}

// Dispatcher delivers notification events concurrently. Delivery is
// best-effort: failures are logged and never surface to the producer.
type Dispatcher struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	mail          mailer.Client
	workers       int
	timeout       time.Duration
	logger        *slog.Logger

	jobs   chan Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the notification worker pool.
func NewDispatcher(
	users repository.UserRepository,
	notifications repository.NotificationRepository,
	mail mailer.Client,
	workers, queueSize int,
	timeout time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		users:         users,
		notifications: notifications,
		mail:          mail,
		workers:       workers,
		timeout:       timeout,
		logger:        logger,
		jobs:          make(chan Event, queueSize),
	}
}

// Start launches background delivery.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue submits an event without blocking. Returns false and logs when
// the queue is full or the dispatcher has stopped.
func (d *Dispatcher) Enqueue(ev Event) bool {
	select {
	case d.jobs <- ev:
		return true
	default:
		d.logger.Warn("notification queue full, event dropped",
			slog.Int64("user_id", ev.UserID),
			slog.String("kind", string(ev.Kind)),
		)
		return false
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handle(ctx, ev)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) {
	evCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	userID := ev.UserID
	_, err := d.notifications.Create(evCtx, &model.Notification{
		UserID:  &userID,
		Kind:    ev.Kind,
		Title:   ev.Title,
		Message: ev.Body,
		Link:    ev.Link,
	})
	if err != nil {
		d.logger.Error("create notification failed",
			slog.Int64("user_id", ev.UserID),
			slog.String("error", err.Error()),
		)
	}

	if !ev.SendEmail {
		return
	}

	user, err := d.users.GetByID(evCtx, ev.UserID)
	if err != nil {
		d.logger.Error("load user for email failed",
			slog.Int64("user_id", ev.UserID),
			slog.String("error", err.Error()),
		)
		return
	}
	msg := mailer.Message{
		To:      user.Email,
		Subject: ev.Title,
		Text:    ev.Body,
	}
	if err := d.mail.Send(evCtx, msg); err != nil {
		d.logger.Error("send email failed",
			slog.Int64("user_id", ev.UserID),
			slog.String("error", err.Error()),
		)
	}
}
