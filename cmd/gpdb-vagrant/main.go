package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/cli"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/logger"
)

func main() {
	logger.Setup(logger.EnvConfig())

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("gpdb-vagrant failed")
		os.Exit(1)
	}
}
