package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledgervoice/internal/asset"
	"github.com/MrJamesThe3rd/ledgervoice/internal/config"
	"github.com/MrJamesThe3rd/ledgervoice/internal/food"
	ledgerHttp "github.com/MrJamesThe3rd/ledgervoice/internal/http"
	assetHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/asset"
	foodHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/food"
	navigateHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/navigate"
	stockHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/stock"
	txHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/transaction"
	"github.com/MrJamesThe3rd/ledgervoice/internal/navigate"
	"github.com/MrJamesThe3rd/ledgervoice/internal/stock"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

func main() {
	// Optional; real deployments pass everything through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService()
		assetService       = asset.NewService()
		foodService        = food.NewService()
		stockService       = stock.NewService()
		navigateService    = navigate.NewService()
	)

	router := ledgerHttp.New(
		ledgerHttp.Options{
			AuthSecret:     cfg.Auth.Secret,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		txHandler.NewHandler(transactionService),
		assetHandler.NewHandler(assetService),
		foodHandler.NewHandler(foodService),
		stockHandler.NewHandler(stockService),
		navigateHandler.NewHandler(navigateService),
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", cfg.Addr(), "auth", cfg.AuthEnabled())

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
