// Package vagrantfile records VM configuration calls and renders them as a
// Vagrantfile, so the result of the provisioning helpers can be previewed or
// validated with `vagrant validate`.
package vagrantfile

import (
	"sort"

	"github.com/vagrant-mcp/gpdb-vagrant/internal/core"
)

// StatementKind identifies a recorded `config.vm` call
type StatementKind int

const (
	// StatementNetwork is a `config.vm.network` call
	StatementNetwork StatementKind = iota
	// StatementSyncedFolder is a `config.vm.synced_folder` call
	StatementSyncedFolder
)

// String returns the Vagrantfile method name of the statement
func (k StatementKind) String() string {
	switch k {
	case StatementNetwork:
		return "network"
	case StatementSyncedFolder:
		return "synced_folder"
	default:
		return "unknown"
	}
}

// Statement is one recorded call. Exactly one of Network or Folder is set.
type Statement struct {
	Kind    StatementKind
	Network *core.Network
	Folder  *core.SyncedFolder
}

// Config is an in-memory core.VMConfig that keeps calls in order
type Config struct {
	// Box is rendered as config.vm.box when set
	Box        string
	statements []Statement
	providers  map[core.ProviderType]*core.ProviderSettings
}

var _ core.VMConfig = (*Config)(nil)

// NewConfig creates an empty configuration
func NewConfig() *Config {
	return &Config{
		providers: make(map[core.ProviderType]*core.ProviderSettings),
	}
}

// SyncedFolder records a synced folder
func (c *Config) SyncedFolder(hostPath, guestPath string, options core.FolderOptions) {
	if options == nil {
		options = core.FolderOptions{}
	}
	c.statements = append(c.statements, Statement{
		Kind:   StatementSyncedFolder,
		Folder: &core.SyncedFolder{HostPath: hostPath, GuestPath: guestPath, Options: options},
	})
}

// Network records a network
func (c *Config) Network(kind core.NetworkType, options core.NetworkOptions) {
	if options == nil {
		options = core.NetworkOptions{}
	}
	c.statements = append(c.statements, Statement{
		Kind:    StatementNetwork,
		Network: &core.Network{Kind: kind, Options: options},
	})
}

// Provider returns the settings block for a provider, creating it on first use
func (c *Config) Provider(kind core.ProviderType) *core.ProviderSettings {
	if c.providers == nil {
		c.providers = make(map[core.ProviderType]*core.ProviderSettings)
	}
	settings, ok := c.providers[kind]
	if !ok {
		settings = &core.ProviderSettings{}
		c.providers[kind] = settings
	}
	return settings
}

// Statements returns the recorded calls in call order
func (c *Config) Statements() []Statement {
	out := make([]Statement, len(c.statements))
	copy(out, c.statements)
	return out
}

// SyncedFolders returns the recorded synced folders in call order
func (c *Config) SyncedFolders() []core.SyncedFolder {
	var folders []core.SyncedFolder
	for _, s := range c.statements {
		if s.Kind == StatementSyncedFolder {
			folders = append(folders, *s.Folder)
		}
	}
	return folders
}

// Networks returns the recorded networks in call order
func (c *Config) Networks() []core.Network {
	var networks []core.Network
	for _, s := range c.statements {
		if s.Kind == StatementNetwork {
			networks = append(networks, *s.Network)
		}
	}
	return networks
}

// ProviderSettings returns a provider block without creating it
func (c *Config) ProviderSettings(kind core.ProviderType) (core.ProviderSettings, bool) {
	settings, ok := c.providers[kind]
	if !ok {
		return core.ProviderSettings{}, false
	}
	return *settings, true
}

func (c *Config) providerKinds() []core.ProviderType {
	kinds := make([]core.ProviderType, 0, len(c.providers))
	for k := range c.providers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
