package router

import (
	"go.uber.org/fx"

	"github.com/zaeempppp/telegram-booster/internal/app"
	"github.com/zaeempppp/telegram-booster/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.BoosterFacade) handlers.BoosterFacade { return f }),
	fx.Provide(Setup),
)
