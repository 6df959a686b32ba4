package main

import (
	"log"
	"log/slog"
	"os"

	"unitconv/internal/config"
	"unitconv/internal/conversion"
)

func main() {
	// Load configuration; a missing or invalid precision stops startup here
	cfg, err := config.Load(config.Options{})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	conversionService, err := conversion.NewConversionService(cfg.App.Precision)
	if err != nil {
		log.Fatalf("Failed to create conversion service: %v", err)
	}

	// Create app
	app := NewApp(logger, cfg.Server.GinMode, conversionService)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr(), "precision", cfg.App.Precision)
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
