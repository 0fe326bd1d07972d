package test

import (
	"context"
	"sync"

	"github.com/giftpad/cardmarket/internal/adapter/mailer"
)

// MailerStub records sent messages for assertions.
type MailerStub struct {
	sync.Mutex
	Sent   []mailer.Message
	SendFn func(context.Context, mailer.Message) error
}

// Send stores the message or delegates to the override.
func (s *MailerStub) Send(ctx context.Context, msg mailer.Message) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	s.Lock()
	defer s.Unlock()
	s.Sent = append(s.Sent, msg)
	return nil
}
