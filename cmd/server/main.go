package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limaJavier/boarding/internal/config"
	"github.com/limaJavier/boarding/internal/logger"
	"github.com/limaJavier/boarding/internal/server"
)

func main() {
	cfg, err := config.Load()
	l := logger.Setup()
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}

	grid, err := cfg.Grid()
	if err != nil {
		l.Error("layout_error", "err", err)
		os.Exit(1)
	}

	srv := server.New(grid, cfg.Options(), cfg.Aircraft, l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(":" + cfg.Port); err != nil {
			l.Error("server_error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	l.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("shutdown_error", "err", err)
		os.Exit(1)
	}
}
