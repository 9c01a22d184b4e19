package server

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/build"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/config"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/logger"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/vm"
)

func buildArgsTool() mcp.Tool {
	return mcp.NewTool("gpdb_build_args",
		mcp.WithDescription("List the configure arguments used to build GPDB in the development VM"),
		mcp.WithBoolean("with_gporca",
			mcp.Description("Build with the GPORCA optimizer"),
			mcp.DefaultBool(true)),
	)
}

// handleBuildArgs handles the gpdb_build_args tool
func handleBuildArgs(cfg config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		withGPORCA := request.GetBool("with_gporca", cfg.WithGPORCA)
		args := build.GPDBArgs(withGPORCA)
		return mcp.NewToolResultText(strings.Join(args, "\n")), nil
	}
}

func renderVagrantfileTool() mcp.Tool {
	return mcp.NewTool("render_vagrantfile",
		mcp.WithDescription("Render the Vagrantfile settings produced by the local override file and VM name"),
		mcp.WithString("name",
			mcp.Description("VirtualBox display name for the VM")),
		mcp.WithString("local_file",
			mcp.Description("Path to the local override file (default vagrant-local.yml)")),
		mcp.WithString("box",
			mcp.Description("Vagrant box to render")),
	)
}

// handleRenderVagrantfile handles the render_vagrantfile tool
func handleRenderVagrantfile(cfg config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rc := cfg
		rc.VMName = request.GetString("name", cfg.VMName)
		rc.LocalFile = request.GetString("local_file", cfg.LocalFile)
		rc.Box = request.GetString("box", cfg.Box)

		ctx, log := logger.WithField(ctx, "tool", "render_vagrantfile")
		vc, err := vm.Compose(ctx, rc)
		if err != nil {
			log.Error().Err(err).Str("file", rc.LocalFile).Msg("Failed to render Vagrantfile")
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(vc.String()), nil
	}
}
