// Package local applies the developer's optional vagrant-local.yml overrides
// to a VM configuration.
//
// The override file lists extra synced folders:
//
//	synced_folder:
//	  - folder: gpdb source
//	    local: ~/workspace/gpdb
//	    shared: /gpdb
//	    type: nfs
//
// Records without both local and shared are ignored. Every key other than
// folder, local and shared becomes a synced_folder option. NFS folders also
// get a host-only network, which the NFS mount needs.
package local

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/core"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/errors"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the override file looked up in the working directory
	DefaultFile = "vagrant-local.yml"
	// NFSHostOnlyIP is the private network address added for NFS folders
	NFSHostOnlyIP = "192.168.10.201"
)

// FolderRecord is one entry of synced_folder
type FolderRecord map[string]interface{}

// Override is the decoded override document
type Override struct {
	// SyncedFolders is nil when the document has no synced_folder key
	SyncedFolders []FolderRecord `yaml:"synced_folder"`
}

// Exists reports whether path names a regular file
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads and decodes an override file
func Load(path string) (*Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("override file", path)
		}
		return nil, errors.OperationFailed("read override file", err)
	}
	return Parse(path, data)
}

// Parse decodes override content. path is only used in error messages.
func Parse(path string, data []byte) (*Override, error) {
	var override Override
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	return &override, nil
}

// Process applies DefaultFile to cfg if it exists
func Process(ctx context.Context, cfg core.VMConfig) error {
	return ProcessFile(ctx, cfg, DefaultFile)
}

// ProcessFile applies the override file at path to cfg. A missing file is
// not an error and leaves cfg untouched.
func ProcessFile(ctx context.Context, cfg core.VMConfig, path string) error {
	ctx, log := logger.WithField(ctx, "file", path)
	if !Exists(path) {
		log.Debug().Msg("No local override file")
		return nil
	}

	override, err := Load(path)
	if err != nil {
		return err
	}
	return Apply(ctx, cfg, override)
}

// Apply registers the override's synced folders on cfg in file order
func Apply(ctx context.Context, cfg core.VMConfig, override *Override) error {
	return ApplyWithMapper(ctx, cfg, override, DefaultOptionMapper)
}

// ApplyWithMapper is Apply with a custom option mapper
func ApplyWithMapper(ctx context.Context, cfg core.VMConfig, override *Override, mapper *OptionMapper) error {
	log := logger.FromContext(ctx)
	if override == nil || override.SyncedFolders == nil {
		log.Debug().Msg("Override has no synced_folder entries")
		return nil
	}

	for i, record := range override.SyncedFolders {
		if !hasPath(record, keyLocal) || !hasPath(record, keyShared) {
			log.Debug().Int("index", i).Msg("Skipping synced folder without local and shared paths")
			continue
		}
		hostPath, err := recordPath(record, keyLocal)
		if err != nil {
			return errors.InvalidInput(fmt.Sprintf("synced_folder[%d]: %v", i, err))
		}
		guestPath, err := recordPath(record, keyShared)
		if err != nil {
			return errors.InvalidInput(fmt.Sprintf("synced_folder[%d]: %v", i, err))
		}

		options := mapper.Map(log, record)
		if t, ok := options[string(OptionType)].(string); ok && t == string(core.SyncMethodNFS) {
			cfg.Network(core.PrivateNetwork, core.NetworkOptions{"ip": NFSHostOnlyIP})
		}
		cfg.SyncedFolder(hostPath, guestPath, options)

		log.Info().
			Str("local", hostPath).
			Str("shared", guestPath).
			Interface("options", options).
			Msg("Registered synced folder")
	}
	return nil
}

func hasPath(record FolderRecord, key string) bool {
	value, ok := record[key]
	return ok && value != nil
}

// recordPath returns a path value of a record. Decoded files already hold
// the source text; other scalars are converted to their string form.
func recordPath(record FolderRecord, key string) (string, error) {
	switch value := record[key].(type) {
	case string:
		return value, nil
	case []interface{}, map[string]interface{}, map[interface{}]interface{}:
		return "", fmt.Errorf("%s must be a scalar, got %T", key, value)
	case time.Time:
		return "", fmt.Errorf("%s must be a plain string, got timestamp %s", key, value.Format(time.RFC3339))
	}
	path, err := cast.ToStringE(record[key])
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return path, nil
}
