// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package core provides the core interfaces shared by the provisioning helpers
package core

// VMConfig is the VM configuration object the helpers write into.
// It mirrors the `config.vm` surface of a Vagrantfile and is owned by the
// caller; helpers only register settings on it.
type VMConfig interface {
	// SyncedFolder registers a host-to-guest directory mapping
	SyncedFolder(hostPath, guestPath string, options FolderOptions)

	// Network registers a network of the given kind
	Network(kind NetworkType, options NetworkOptions)

	// Provider returns the mutable settings block of a hypervisor provider
	Provider(kind ProviderType) *ProviderSettings
}
