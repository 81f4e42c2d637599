package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tapwallet/walletd/internal/config"
	"github.com/tapwallet/walletd/internal/face"
	"github.com/tapwallet/walletd/internal/handler"
	"github.com/tapwallet/walletd/internal/logging"
	"github.com/tapwallet/walletd/internal/middleware"
	"github.com/tapwallet/walletd/internal/store"
	"github.com/tapwallet/walletd/internal/wallet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("walletd", cfg.LogLevel, cfg.AppEnv)

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	settler := &wallet.SimulatedSettler{
		Delay: time.Duration(cfg.SettlementDelayMS) * time.Millisecond,
	}
	manager := wallet.NewManager(st, settler, wallet.WithLimit(cfg.PaymentLimit))
	manager.Load(context.Background())

	faceClient := face.NewClient(cfg.FaceAPIURL, cfg.FaceThreshold)
	faceSvc := face.NewService(faceClient, slog.Default())

	walletHandler := handler.NewWalletHandler(manager)
	faceHandler := handler.NewFaceHandler(faceSvc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /api/v1/cards", walletHandler.ListCards)
	mux.HandleFunc("POST /api/v1/cards", walletHandler.AddCard)
	mux.HandleFunc("POST /api/v1/cards/{id}/select", walletHandler.SelectCard)
	mux.HandleFunc("GET /api/v1/transactions", walletHandler.ListTransactions)
	mux.Handle("POST /api/v1/payments", middleware.Idempotency(st)(http.HandlerFunc(walletHandler.CreatePayment)))
	mux.HandleFunc("POST /api/v1/face/register", faceHandler.Register)
	mux.HandleFunc("POST /api/v1/face/verify", faceHandler.Verify)

	root := middleware.Tracing(middleware.Logging(middleware.Recovery(mux)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemory(), nil
	case "sqlite":
		return store.NewSQLite(cfg.SQLitePath)
	case "postgres":
		return store.NewPostgres(
			cfg.DatabaseURL,
			cfg.DBMaxOpenConns,
			cfg.DBMaxIdleConns,
			time.Duration(cfg.DBConnMaxLifetimeS)*time.Second,
		)
	default:
		return nil, fmt.Errorf("openStore: unknown driver %q", cfg.StoreDriver)
	}
}
