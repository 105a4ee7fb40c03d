package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dunya/jewellery-bot/internal/config"
	"github.com/dunya/jewellery-bot/internal/dialog"
	"github.com/dunya/jewellery-bot/internal/domain/cart"
	"github.com/dunya/jewellery-bot/internal/domain/catalog"
	"github.com/dunya/jewellery-bot/internal/domain/sizes"
	"github.com/dunya/jewellery-bot/internal/infra/metrics"
)

type Bot struct {
	api *tgbotapi.BotAPI
	log *slog.Logger

	catalog  *catalog.Repo
	carts    *cart.Repo
	sizes    *sizes.Repo
	checkout *dialog.Service

	adminChat     int64
	managerHandle string
	channelURL    string
}

func New(api *tgbotapi.BotAPI, log *slog.Logger, cfg config.Config,
	catalogRepo *catalog.Repo, cartRepo *cart.Repo, sizeRepo *sizes.Repo,
	checkoutSvc *dialog.Service) *Bot {

	return &Bot{
		api:           api,
		log:           log,
		catalog:       catalogRepo,
		carts:         cartRepo,
		sizes:         sizeRepo,
		checkout:      checkoutSvc,
		adminChat:     cfg.Telegram.AdminChatID,
		managerHandle: cfg.Telegram.ManagerHandle,
		channelURL:    cfg.Telegram.ChannelURL,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				metrics.UpdatesTotal.WithLabelValues("message").Inc()
				b.onMessage(upd.Message)
			} else if upd.CallbackQuery != nil {
				metrics.UpdatesTotal.WithLabelValues("callback").Inc()
				b.onCallback(upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) onMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}
	b.handleText(msg)
}

func (b *Bot) onCallback(cb *tgbotapi.CallbackQuery) {
	b.handleCallback(cb)
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		metrics.SendErrorsTotal.Inc()
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	if _, err := b.api.Request(resp); err != nil {
		b.log.Error("answer callback failed", "err", err)
	}
}

// sendMarkdown — обычное сообщение с Markdown-разметкой.
func (b *Bot) sendMarkdown(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	b.send(m)
}
