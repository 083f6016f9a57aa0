package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kcherng/ledgerkit/internal/auth"
	"github.com/kcherng/ledgerkit/internal/config"
	"github.com/kcherng/ledgerkit/internal/dashboard"
	"github.com/kcherng/ledgerkit/internal/database"
	ledgerHttp "github.com/kcherng/ledgerkit/internal/http"
	authHandler "github.com/kcherng/ledgerkit/internal/http/authtoken"
	cardHandler "github.com/kcherng/ledgerkit/internal/http/card"
	categoryHandler "github.com/kcherng/ledgerkit/internal/http/category"
	dashboardHandler "github.com/kcherng/ledgerkit/internal/http/dashboard"
	memberHandler "github.com/kcherng/ledgerkit/internal/http/member"
	txHandler "github.com/kcherng/ledgerkit/internal/http/transaction"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/ledger/store"
	"github.com/kcherng/ledgerkit/internal/suggest"
	suggestStore "github.com/kcherng/ledgerkit/internal/suggest/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("AUTH_SECRET must be set")
		os.Exit(1)
	}

	db, err := database.Open(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		authService      = auth.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
		ledgerService    = ledger.NewService(store.New(db))
		dashboardService = dashboard.NewService(ledgerService)
		suggestService   = suggest.NewService(suggestStore.New(db))
	)

	var (
		authH      = authHandler.NewHandler(authService)
		txH        = txHandler.NewHandler(ledgerService, suggestService)
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		categoryH  = categoryHandler.NewHandler(ledgerService, suggestService)
		cardH      = cardHandler.NewHandler(ledgerService)
		memberH    = memberHandler.NewHandler(ledgerService)
	)

	router := ledgerHttp.New(authService, authH, txH, dashboardH, categoryH, cardH, memberH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
