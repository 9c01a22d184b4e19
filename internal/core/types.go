// Package core provides the core types used throughout the provisioning helpers
package core

import "sort"

// SyncMethod represents the mechanism Vagrant uses for a synced folder
type SyncMethod string

const (
	// SyncMethodRsync uses rsync for synchronization
	SyncMethodRsync SyncMethod = "rsync"
	// SyncMethodNFS uses NFS for synchronization
	SyncMethodNFS SyncMethod = "nfs"
	// SyncMethodSMB uses SMB for synchronization
	SyncMethodSMB SyncMethod = "smb"
	// SyncMethodVirtualBox uses VirtualBox shared folders
	SyncMethodVirtualBox SyncMethod = "virtualbox"
)

// NetworkType is the first argument of `config.vm.network`
type NetworkType string

const (
	// PrivateNetwork is a host-only network
	PrivateNetwork NetworkType = "private_network"
	// PublicNetwork is a bridged network
	PublicNetwork NetworkType = "public_network"
	// ForwardedPort maps a guest port to a host port
	ForwardedPort NetworkType = "forwarded_port"
)

// ProviderType names a Vagrant provider block
type ProviderType string

const (
	// ProviderVirtualBox is the VirtualBox provider
	ProviderVirtualBox ProviderType = "virtualbox"
)

// FolderOptions are the named options of a synced folder, keyed by option name.
// Values are passed to Vagrant unchanged.
type FolderOptions map[string]interface{}

// Keys returns the option names in lexical order
func (o FolderOptions) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NetworkOptions are the named options of a network, e.g. ip
type NetworkOptions map[string]interface{}

// Keys returns the option names in lexical order
func (o NetworkOptions) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SyncedFolder is a registered host-to-guest directory mapping
type SyncedFolder struct {
	HostPath  string        `json:"host_path"`
	GuestPath string        `json:"guest_path"`
	Options   FolderOptions `json:"options,omitempty"`
}

// Network is a registered VM network
type Network struct {
	Kind    NetworkType    `json:"kind"`
	Options NetworkOptions `json:"options,omitempty"`
}

// ProviderSettings is the provider-specific block of a VM configuration
type ProviderSettings struct {
	// Name is the display name the hypervisor shows for the VM
	Name string `json:"name,omitempty"`
}
