// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package cmdexec

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/errors"
)

// VagrantExecutor runs the vagrant CLI
type VagrantExecutor struct {
	// Binary is the vagrant executable, looked up on PATH when not absolute
	Binary string
	// DefaultTimeout bounds each vagrant invocation
	DefaultTimeout time.Duration
}

// NewVagrantExecutor creates a new Vagrant executor
func NewVagrantExecutor(binary string) *VagrantExecutor {
	if binary == "" {
		binary = "vagrant"
	}
	return &VagrantExecutor{
		Binary:         binary,
		DefaultTimeout: 2 * time.Minute,
	}
}

// Run executes a vagrant subcommand in dir
func (e *VagrantExecutor) Run(ctx context.Context, dir string, args ...string) (*Result, error) {
	return Execute(ctx, e.Binary, args, CmdOptions{
		Directory: dir,
		Timeout:   e.DefaultTimeout,
	})
}

// CheckInstalled returns an error if the vagrant CLI cannot be run
func (e *VagrantExecutor) CheckInstalled(ctx context.Context) error {
	result, err := e.Run(ctx, "", "--version")
	if err != nil {
		return errors.Wrap(err, errors.CodeVagrantError, "vagrant CLI is not available")
	}
	if !result.IsSuccessful() || len(strings.TrimSpace(string(result.StdOut))) == 0 {
		return errors.New(errors.CodeVagrantError, "vagrant CLI check returned no version")
	}
	return nil
}

// Validate runs `vagrant validate` against the Vagrantfile in dir
func (e *VagrantExecutor) Validate(ctx context.Context, dir string) error {
	result, err := e.Run(ctx, dir, "validate")
	if err != nil {
		return errors.Wrap(err, errors.CodeVagrantError, "failed to run vagrant validate")
	}
	if !result.IsSuccessful() {
		output := strings.TrimSpace(string(result.StdErr) + string(result.StdOut))
		return errors.Wrap(fmt.Errorf("%s", output), errors.CodeVagrantError, "vagrantfile validation failed").
			WithContext("dir", dir).
			WithContext("exitCode", result.ExitCode)
	}
	log.Info().Str("dir", dir).Msg("Vagrantfile validated successfully")
	return nil
}
