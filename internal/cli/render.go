package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/cmdexec"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/config"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/vm"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/watch"
)

type renderOptions struct {
	outDir   string
	validate bool
	watch    bool
}

func newRenderCommand() *cobra.Command {
	var (
		opts      renderOptions
		name      string
		localFile string
		box       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the Vagrantfile settings from vagrant-local.yml",
		Long: `Apply the local override file and VM name to an empty configuration and
print the resulting Vagrantfile. With --out the Vagrantfile is written to
that directory instead; --validate runs "vagrant validate" on it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			if cmd.Flags().Changed("name") {
				cfg.VMName = name
			}
			if cmd.Flags().Changed("local-file") {
				cfg.LocalFile = localFile
			}
			if cmd.Flags().Changed("box") {
				cfg.Box = box
			}

			if err := renderOnce(cmd, cfg, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := watch.New(cfg.LocalFile, cfg.WatchDebounce, func(ctx context.Context) {
				if err := renderOnce(cmd, cfg, opts); err != nil {
					log.Error().Err(err).Msg("Failed to render Vagrantfile")
				}
			})
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "VirtualBox display name for the VM")
	cmd.Flags().StringVar(&localFile, "local-file", "", "local override file (default vagrant-local.yml)")
	cmd.Flags().StringVar(&box, "box", "", "Vagrant box to render")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "write the Vagrantfile into this directory")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "run vagrant validate on the result")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "render again whenever the override file changes")
	return cmd
}

// renderOnce composes the configuration and prints or writes it
func renderOnce(cmd *cobra.Command, cfg config.Config, opts renderOptions) error {
	ctx := cmd.Context()
	vc, err := vm.Compose(ctx, cfg)
	if err != nil {
		return err
	}

	if opts.outDir == "" && !opts.validate {
		_, err := fmt.Fprint(cmd.OutOrStdout(), vc.String())
		return err
	}

	dir := opts.outDir
	if dir == "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), vc.String())
		tmp, err := os.MkdirTemp("", "gpdb-vagrant-validate")
		if err != nil {
			return err
		}
		defer func() {
			if err := os.RemoveAll(tmp); err != nil {
				log.Error().Err(err).Str("dir", tmp).Msg("Failed to remove validation directory")
			}
		}()
		dir = tmp
	}

	path, err := vc.WriteFile(dir)
	if err != nil {
		return err
	}
	if opts.outDir != "" {
		log.Info().Str("path", path).Msg("Vagrantfile written")
	}

	if opts.validate {
		return cmdexec.NewVagrantExecutor(cfg.VagrantBin).Validate(ctx, dir)
	}
	return nil
}
