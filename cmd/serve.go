package main

import (
	"log/slog"

	"github.com/ian-shakespeare/liblox/internal/config"
	"github.com/ian-shakespeare/liblox/internal/server"
)

func runServe(cfg config.Server, logger *slog.Logger) int {
	s := server.New(cfg, logger)
	if err := s.Start(); err != nil {
		logger.Error("Failed to start server", "error", err)
		return exitFailure
	}
	return exitOK
}
