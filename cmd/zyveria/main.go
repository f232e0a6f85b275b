// Package main is the entry point for Zyveria.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/samdwyer/zyveria/internal/config"
	"github.com/samdwyer/zyveria/internal/game"
	"github.com/samdwyer/zyveria/internal/logger"
	"github.com/samdwyer/zyveria/internal/shop"
	"github.com/samdwyer/zyveria/internal/telemetry"
	"github.com/samdwyer/zyveria/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("zyveria: %v", err)
	}
}

func run() error {
	// Loads .env first; real environment variables still win.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg, logFile)

	ctx := context.Background()

	if cfg.TelemetryEnabled {
		telemetry.ExportEnv(logCfg.ServiceName)
		shutdown, err := telemetry.Setup(ctx, telemetry.Config{
			ServiceName: logCfg.ServiceName,
			Version:     logCfg.Version,
			Environment: logCfg.Environment,
		})
		if err != nil {
			slog.Warn("Telemetry setup failed, running without tracing", "error", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					slog.Error("Error shutting down telemetry", "error", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	term, closeTerm, err := openTerminal(cfg.Plain)
	if err != nil {
		return err
	}
	defer closeTerm()

	g, err := game.New(term, game.Config{
		Seed:     cfg.Seed,
		SaveDir:  cfg.SaveDir,
		Features: shop.Features(cfg.Features),
	})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		slog.Error("Game error", "error", err)
		return err
	}
	return nil
}

// openTerminal prefers the tcell console and falls back to plain stdio when
// asked to or when no terminal is available.
func openTerminal(plain bool) (game.Terminal, func(), error) {
	if !plain {
		console, err := ui.NewConsole()
		if err == nil {
			return console, console.Close, nil
		}
		slog.Warn("Console unavailable, using plain terminal", "error", err)
	}
	return ui.NewPlain(os.Stdin, os.Stdout), func() {}, nil
}
