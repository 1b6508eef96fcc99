// Package main renders a grid of rotating wireframed cubes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/gfx-examples/internal/config"
	"github.com/Faultbox/gfx-examples/internal/demo"
	"github.com/Faultbox/gfx-examples/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init("cubes", cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== gfx-examples/cubes ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := demo.Run(ctx, cfg, demo.NewCubes()); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
