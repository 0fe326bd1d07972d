package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/giftpad/cardmarket/internal/config"
)

func newClient(cfg *config.Config, logger *slog.Logger) (Client, error) {
	if cfg.EmailAPIAddress == "" {
		return NewNoopClient(logger), nil
	}
	return NewHTTPClient(cfg.EmailAPIAddress, logger)
}

// Module wires the mailer client.
var Module = fx.Module("mailer",
	fx.Provide(newClient),
)
