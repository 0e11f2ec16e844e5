package main

import (
	"github.com/osse101/Stockroom_Go/internal/config"
	"github.com/osse101/Stockroom_Go/internal/handler"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.IsDevelopment()

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "stockroom",
		Version:     handler.Version,
		Environment: cfg.Environment,
		AddSource:   addSource,
	})
}
