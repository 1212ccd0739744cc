package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itchan-dev/hackorsnooze/backend/internal/router"
	"github.com/itchan-dev/hackorsnooze/backend/internal/setup"
	"github.com/itchan-dev/hackorsnooze/shared/config"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to yaml config (optional)")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	if cfg.Server.JwtKey == "" {
		logger.Log.Error("jwt key is not set, use server.jwt_key or SNOOZE_SERVER_JWT_KEY")
		os.Exit(1)
	}

	deps := setup.SetupDependencies(cfg)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
	logger.Log.Info("server stopped")
}
