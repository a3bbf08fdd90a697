package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/fb-post-importer/internal/telegram"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
	"github.com/orgball2608/fb-post-importer/pkg/retry"
	"go.uber.org/fx"
)

// Sender is the part of tgbotapi.BotAPI used here.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	bot    Sender
	userID int64
	retry  retry.Config
	logger logger.Logger
}

// New returns a bot backed client, or telegram.Noop when notifications are
// not configured.
func New(opts Opts) (telegram.Client, error) {
	if !opts.Config.NotifierEnabled() {
		return telegram.Noop{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "error", err)
		return nil, err
	}

	return NewWithSender(bot, opts.Config.Telegram.User, opts.Logger), nil
}

func NewWithSender(bot Sender, userID int64, log logger.Logger) *TelegramImpl {
	cfg := retry.DefaultConfig()
	cfg.IsPermanent = isPermanent

	return &TelegramImpl{
		bot:    bot,
		userID: userID,
		retry:  cfg,
		logger: log.WithComponent("Telegram"),
	}
}

var _ telegram.Client = (*TelegramImpl)(nil)
