// Package cli provides the gpdb-vagrant command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/config"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/logger"
)

type configKey struct{}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "gpdb-vagrant",
		Short: "Helpers for the GPDB development Vagrant VMs",
		Long: `gpdb-vagrant prints the GPDB configure arguments, previews the
Vagrantfile settings produced by vagrant-local.yml, and serves both as MCP
tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				lc := logger.EnvConfig()
				lc.Level = logger.LogLevel(logLevel)
				logger.Setup(lc)
			}

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newBuildArgsCommand())
	root.AddCommand(newRenderCommand())
	root.AddCommand(newServeCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// configFrom returns the configuration loaded by the root command
func configFrom(cmd *cobra.Command) config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
