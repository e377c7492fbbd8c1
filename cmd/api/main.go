package main

import (
	"os"

	"github.com/prayaas/yuvasetu/internal/pkg/logger"
	"github.com/prayaas/yuvasetu/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
