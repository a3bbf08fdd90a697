package telegramimpl

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/fb-post-importer/pkg/retry"
)

// SendMessageToUser sends a MarkdownV2 message to the configured user.
// The text must already be escaped.
func (tg *TelegramImpl) SendMessageToUser(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(tg.userID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	err := retry.Do(ctx, tg.logger, "send telegram message", func() error {
		_, err := tg.bot.Send(msg)
		return err
	}, tg.retry)
	if err != nil {
		tg.logger.Error("Error sending message to user", "userID", tg.userID, "error", err)
		return fmt.Errorf("failed to send message to user: %w", err)
	}

	tg.logger.Info("Message sent to user", "userID", tg.userID)
	return nil
}

// isPermanent reports Bot API rejections that a retry cannot fix, such as a
// malformed message or a chat the bot may not write to.
func isPermanent(err error) bool {
	var tgErr *tgbotapi.Error
	if !errors.As(err, &tgErr) {
		return false
	}
	return tgErr.Code >= 400 && tgErr.Code < 500 && tgErr.Code != 429
}
