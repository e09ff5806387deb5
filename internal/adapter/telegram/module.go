package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/zaeempppp/telegram-booster/internal/config"
)

// Module exposes telegram client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.TelegramAPIURL, p.Config.TelegramBotToken, p.Config.TelegramChatID, p.Logger)
}
