package vm

import (
	"context"

	"github.com/vagrant-mcp/gpdb-vagrant/internal/config"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/local"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/vagrantfile"
)

// Compose builds a VM configuration the way a GPDB Vagrantfile does: the
// local overrides are applied first, then the VM is named.
func Compose(ctx context.Context, cfg config.Config) (*vagrantfile.Config, error) {
	vc := vagrantfile.NewConfig()
	vc.Box = cfg.Box

	if err := local.ProcessFile(ctx, vc, cfg.LocalFile); err != nil {
		return nil, err
	}
	if cfg.VMName != "" {
		NameVM(vc, cfg.VMName)
	}
	return vc, nil
}
