package di

import (
	"go.uber.org/fx"

	"github.com/zaeempppp/telegram-booster/internal/adapter/telegram"
	"github.com/zaeempppp/telegram-booster/internal/app"
	"github.com/zaeempppp/telegram-booster/internal/config"
	"github.com/zaeempppp/telegram-booster/internal/logger"
	"github.com/zaeempppp/telegram-booster/internal/pkg/auth"
	"github.com/zaeempppp/telegram-booster/internal/server/http/router"
	"github.com/zaeempppp/telegram-booster/internal/storage/postgres"
	"github.com/zaeempppp/telegram-booster/internal/usecase"
	"github.com/zaeempppp/telegram-booster/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		telegram.Module,
		usecase.Module,
		fx.Provide(func(d *worker.NotifyDispatcher) usecase.Notifier { return d }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
