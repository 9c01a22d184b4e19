package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/build"
)

func newBuildArgsCommand() *cobra.Command {
	var (
		withGPORCA bool
		shell      bool
	)

	cmd := &cobra.Command{
		Use:   "build-args",
		Short: "Print the GPDB configure arguments",
		Long: `Print the arguments passed to ./configure when building GPDB in the VM,
one per line. With --shell they are printed on a single line.

GPORCA is enabled unless --with-gporca=false or GPDB_WITH_GPORCA=false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("with-gporca") {
				withGPORCA = configFrom(cmd).WithGPORCA
			}

			buildArgs := build.GPDBArgs(withGPORCA)
			sep := "\n"
			if shell {
				sep = " "
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(buildArgs, sep))
			return err
		},
	}

	cmd.Flags().BoolVar(&withGPORCA, "with-gporca", true, "build with the GPORCA optimizer")
	cmd.Flags().BoolVar(&shell, "shell", false, "print the arguments on one line")
	return cmd
}
