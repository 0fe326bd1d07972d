package filestore

import (
	"go.uber.org/fx"

	"github.com/giftpad/cardmarket/internal/config"
)

func newStore(cfg *config.Config) (Store, error) {
	return NewDiskStore(cfg.UploadDir)
}

// Module wires the upload store.
var Module = fx.Module("filestore",
	fx.Provide(newStore),
)
