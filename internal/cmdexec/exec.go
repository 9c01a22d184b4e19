// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package cmdexec runs external commands such as the vagrant CLI
package cmdexec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/errors"
)

// StreamCallback receives command output as it is produced
type StreamCallback func(data []byte, isStderr bool)

// CmdOptions represents options for command execution
type CmdOptions struct {
	// Directory is the working directory for the command
	Directory string
	// Environment variables to pass to the command (format: "KEY=VALUE")
	Environment []string
	// OutputCallback, when set, is called with output as it arrives.
	// Output is captured into the Result either way. stdout and stderr are
	// read concurrently, so the callback must be safe for concurrent use.
	OutputCallback StreamCallback
	// Timeout specifies a timeout for the command execution (0 means no timeout)
	Timeout time.Duration
}

// Result contains the results of a command execution
type Result struct {
	Command  string
	Args     []string
	ExitCode int
	StdOut   []byte
	StdErr   []byte
	Duration time.Duration
}

// FormatCommand returns the full command that was executed as a string
func (r *Result) FormatCommand() string {
	if len(r.Args) == 0 {
		return r.Command
	}
	return fmt.Sprintf("%s %v", r.Command, r.Args)
}

// IsSuccessful returns true if the command exited with status 0
func (r *Result) IsSuccessful() bool {
	return r.ExitCode == 0
}

// Execute runs a command and returns the result. A non-zero exit status is
// reported through Result.ExitCode, not as an error.
func Execute(ctx context.Context, command string, args []string, options CmdOptions) (*Result, error) {
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	result := &Result{
		Command: command,
		Args:    args,
	}

	cmd := exec.CommandContext(ctx, command, args...)
	if options.Directory != "" {
		cmd.Dir = options.Directory
	}
	if len(options.Environment) > 0 {
		cmd.Env = options.Environment
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.OperationFailed("create stdout pipe", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.OperationFailed("create stderr pipe", err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, errors.OperationFailed("start command", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		collect(stdout, false, &result.StdOut, options.OutputCallback)
	}()
	go func() {
		defer wg.Done()
		collect(stderr, true, &result.StdErr, options.OutputCallback)
	}()
	wg.Wait()

	err = cmd.Wait()
	result.Duration = time.Since(start)
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok || ctx.Err() != nil {
			return result, errors.OperationFailed(fmt.Sprintf("run %s", command), err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logger := log.With().
		Str("command", command).
		Strs("args", args).
		Int("exitCode", result.ExitCode).
		Dur("duration", result.Duration).
		Logger()

	if result.IsSuccessful() {
		logger.Debug().Msg("Command executed successfully")
	} else {
		logger.Warn().
			Str("stderr", string(result.StdErr)).
			Msg("Command execution failed")
	}

	return result, nil
}

// collect reads r until EOF, capturing into buffer and forwarding to callback
func collect(r io.Reader, isStderr bool, buffer *[]byte, callback StreamCallback) {
	buf := make([]byte, 1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := buf[:n]
			*buffer = append(*buffer, data...)
			if callback != nil {
				callback(data, isStderr)
			}
		}
		if err != nil {
			return
		}
	}
}
