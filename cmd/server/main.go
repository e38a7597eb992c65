package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Jnyanu18/portfolio/internal/config"
	"github.com/Jnyanu18/portfolio/internal/logging"
	"github.com/Jnyanu18/portfolio/internal/server"
	"github.com/Jnyanu18/portfolio/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Configure and get logger
	logConfig := &logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting portfolio backend in %s mode", cfg.Environment)

	// Open and seed the portfolio content store
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		logger.Error("Failed to create data directory: %v", err)
		os.Exit(1)
	}
	contentStore, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer contentStore.Close()

	if err := contentStore.Init(context.Background()); err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	logger.Info("Database seeded successfully")

	// Create and start server
	srv := server.NewServer(cfg, contentStore)
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	logger.Info("Server running on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
