package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-seat-identifier/config"
	"go-seat-identifier/internal/seatcheck"
	"go-seat-identifier/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")
	defer logger.L.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal("Invalid log level", zap.String("level", cfg.Log.Level), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := seatcheck.NewChecker(cfg.SeatCheck)

	// 有參數就檢查參數，否則從 stdin 逐行讀取
	var summary seatcheck.Summary
	if args := os.Args[1:]; len(args) > 0 {
		summary, err = checker.CheckAll(ctx, args, os.Stdout)
	} else {
		summary, err = checker.CheckLines(ctx, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Fatal("Seat check aborted", zap.Error(err))
	}

	if cfg.SeatCheck.Strict && summary.Invalid > 0 {
		logger.L.Sync()
		os.Exit(1)
	}
}
