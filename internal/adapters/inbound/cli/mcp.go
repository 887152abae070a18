package cli

import (
	mcpadapter "github.com/prodcat/prodcat/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the prodcat MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start prodcat MCP server (stdio)",
		Long:  "Start the prodcat MCP server using stdio transport. Assistants can list, search and edit the catalog; edits are written only by catalog_save.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			return server.ServeStdio(mcpadapter.NewCatalogMCPServer(s.svc, version))
		},
	}
}
