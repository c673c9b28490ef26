package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Spok95/churrasco-bot/internal/bot"
	"github.com/Spok95/churrasco-bot/internal/config"
	"github.com/Spok95/churrasco-bot/internal/dialog"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
	"github.com/Spok95/churrasco-bot/internal/infra/cep"
	"github.com/Spok95/churrasco-bot/internal/infra/db"
	httpx "github.com/Spok95/churrasco-bot/internal/infra/http"
	"github.com/Spok95/churrasco-bot/internal/infra/logger"
	"github.com/Spok95/churrasco-bot/migrations"
)

func runMigrations(dsn string, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	log.Debug("applying migrations")
	return goose.Up(sqlDB, ".")
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	cat, err := catalog.NewRepo(pool).LoadOrDefault(ctx)
	if err != nil {
		log.Error("catalog load failed", "err", err)
		return
	}
	log.Info("catalog loaded", "meats", len(cat.Meats), "drinks", len(cat.Drinks),
		"consumables", len(cat.Consumables), "side_dishes", len(cat.SideDishes))

	cepClient := cep.NewClient(cfg.CEP.BaseURL, cfg.CEP.Timeout)

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using UTC", "tz", cfg.App.Timezone, "err", err)
		loc = time.UTC
	}

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, httpx.Deps{
		Log:     log,
		Catalog: cat,
		CEP:     cepClient,
	})
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	log.Info("telegram authorized", "bot", api.Self.UserName)

	b := bot.New(api, log, dialog.NewRepo(pool), cat, cepClient, loc)
	if err := b.Run(ctx, cfg.Telegram.TimeoutSec); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
