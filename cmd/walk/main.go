package main

import (
	"capsulewalk/internal/config"
	"capsulewalk/internal/game"
	"capsulewalk/internal/logging"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	watch := flag.Bool("watch", true, "reload tuning values when the config file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, level, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting",
		zap.String("config", *configPath),
		zap.String("outside", cfg.Zones.Outside),
		zap.String("inside", cfg.Zones.Inside))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.New(cfg, log)
	g.LogLevel = level
	if *watch {
		g.ConfigPath = *configPath
	}
	if err := g.Run(ctx); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}
