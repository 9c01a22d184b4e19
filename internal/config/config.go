// Package config provides the tool configuration and its defaults
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/local"
)

// Environment variables read by FromEnv
const (
	EnvLocalFile     = "GPDB_VAGRANT_LOCAL_FILE"
	EnvVMName        = "GPDB_VAGRANT_VM_NAME"
	EnvBox           = "GPDB_VAGRANT_BOX"
	EnvWithGPORCA    = "GPDB_WITH_GPORCA"
	EnvVagrantBin    = "VAGRANT_BIN"
	EnvWatchDebounce = "GPDB_VAGRANT_WATCH_DEBOUNCE"
)

// Config holds the settings shared by the CLI commands and the MCP server
type Config struct {
	// LocalFile is the override file applied to rendered configurations
	LocalFile string
	// VMName is the VirtualBox display name; empty leaves it unset
	VMName string
	// Box is rendered as config.vm.box when set
	Box string
	// WithGPORCA selects the GPORCA build arguments
	WithGPORCA bool
	// VagrantBin is the vagrant executable
	VagrantBin string
	// WatchDebounce is how long the watcher waits for edits to settle
	WatchDebounce time.Duration
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		LocalFile:     local.DefaultFile,
		WithGPORCA:    true,
		VagrantBin:    "vagrant",
		WatchDebounce: 300 * time.Millisecond,
	}
}

// FromEnv returns Default overridden by environment variables
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLocalFile); ok && v != "" {
		cfg.LocalFile = v
	}
	if v, ok := lookup(EnvVMName); ok {
		cfg.VMName = v
	}
	if v, ok := lookup(EnvBox); ok {
		cfg.Box = v
	}
	if v, ok := lookup(EnvVagrantBin); ok && v != "" {
		cfg.VagrantBin = v
	}
	if v, ok := lookup(EnvWithGPORCA); ok && v != "" {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvWithGPORCA, v, err)
		}
		cfg.WithGPORCA = b
	}
	if v, ok := lookup(EnvWatchDebounce); ok && v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvWatchDebounce, v, err)
		}
		cfg.WatchDebounce = d
	}

	return cfg, nil
}
