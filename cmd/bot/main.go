package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dunya/jewellery-bot/internal/bot"
	"github.com/dunya/jewellery-bot/internal/config"
	"github.com/dunya/jewellery-bot/internal/dialog"
	"github.com/dunya/jewellery-bot/internal/domain/cart"
	"github.com/dunya/jewellery-bot/internal/domain/catalog"
	"github.com/dunya/jewellery-bot/internal/domain/sizes"
	httpx "github.com/dunya/jewellery-bot/internal/infra/http"
	"github.com/dunya/jewellery-bot/internal/infra/logger"
)

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	catalogRepo, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Error("catalog load failed", "path", cfg.Catalog.Path, "err", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "products", catalogRepo.Len())

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram auth failed", "err", err)
		os.Exit(1)
	}
	log.Info("bot authorized", "username", api.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	cartRepo := cart.NewRepo()
	sizeRepo := sizes.NewRepo()
	checkoutSvc := dialog.NewService(dialog.NewRepo(), cartRepo, bot.MenuLabels())

	b := bot.New(api, log, cfg, catalogRepo, cartRepo, sizeRepo, checkoutSvc)

	go func() {
		if err := b.Run(ctx, 60); err != nil && ctx.Err() == nil {
			log.Error("bot stopped", "err", err)
		}
	}()
	log.Info("bot started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
