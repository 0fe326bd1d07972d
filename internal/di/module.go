package di

import (
	"github.com/giftpad/cardmarket/internal/adapter/filestore"
	"github.com/giftpad/cardmarket/internal/adapter/mailer"
	"github.com/giftpad/cardmarket/internal/app"
	"github.com/giftpad/cardmarket/internal/config"
	"github.com/giftpad/cardmarket/internal/logger"
	"github.com/giftpad/cardmarket/internal/pkg/auth"
	"github.com/giftpad/cardmarket/internal/server/http/router"
	"github.com/giftpad/cardmarket/internal/storage/postgres"
	"github.com/giftpad/cardmarket/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		mailer.Module,
		filestore.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
