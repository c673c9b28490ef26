package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/churrasco-bot/internal/dialog"
	"github.com/Spok95/churrasco-bot/internal/domain/address"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
	"github.com/Spok95/churrasco-bot/internal/infra/metrics"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	log     *slog.Logger
	states  *dialog.Repo
	catalog catalog.Catalog
	cep     address.Lookuper
	loc     *time.Location
}

func New(api *tgbotapi.BotAPI, log *slog.Logger, statesRepo *dialog.Repo,
	cat catalog.Catalog, cepClient address.Lookuper, loc *time.Location) *Bot {

	if loc == nil {
		loc = time.UTC
	}
	return &Bot{
		api: api, log: log, states: statesRepo,
		catalog: cat, cep: cepClient, loc: loc,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				metrics.BotUpdates.WithLabelValues("message").Inc()
				b.onMessage(ctx, upd)
			} else if upd.CallbackQuery != nil {
				metrics.BotUpdates.WithLabelValues("callback").Inc()
				b.onCallback(ctx, upd)
			}
		}
	}
}

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleStateMessage(ctx, msg)
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	b.handleCallback(ctx, upd.CallbackQuery)
}
