package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotoclear/camdocs/config"
	"github.com/rotoclear/camdocs/nav"
	"github.com/rotoclear/camdocs/site"
	"github.com/rotoclear/camdocs/templatex"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("starting", "version", BUILD_SIGNATURE, "docs", cfg.DocsDir)

	templates, err := templatex.Load()
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}

	svc := site.NewService(cfg, nav.Tree, templates, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := svc.Build(ctx)
	if err != nil {
		logger.Error("build", "error", err)
		os.Exit(1)
	}
	logger.Info("static build completed", "processed", len(report.Processed), "output", cfg.OutputDir)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
