// Package vm provides helpers that configure a Vagrant virtual machine
package vm

import "github.com/vagrant-mcp/gpdb-vagrant/internal/core"

// NameVM sets the name VirtualBox shows for the VM. The name is not
// validated; uniqueness is the caller's concern.
func NameVM(cfg core.VMConfig, name string) {
	cfg.Provider(core.ProviderVirtualBox).Name = name
}
