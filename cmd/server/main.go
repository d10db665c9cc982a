package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dinette/internal/commons"
	"dinette/internal/dish"
	"dinette/internal/infrastructure/logger"
	"dinette/internal/order"
	"dinette/internal/server"
	"dinette/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := commons.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	st := store.New()
	if cfg.Store.Seed {
		st.Seed()
		zapLogger.Info("store seeded",
			zap.Int("dishes", len(st.Dishes())),
			zap.Int("orders", len(st.Orders())),
		)
	}

	dishCtrl := dish.NewController(st, zapLogger)
	orderCtrl := order.NewController(st, zapLogger)

	router := server.NewRouter(dishCtrl, orderCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
