package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/odatatools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: odatatools mcp\n\n")
		Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio, exposing the\n")
		Writef(fs.Output(), "validate and classify tools to MCP clients.\n\n")
		Writef(fs.Output(), "Configuration is read from ODATATOOLS_* environment variables:\n")
		Writef(fs.Output(), "  ODATATOOLS_METADATA_FILE          default metadata document\n")
		Writef(fs.Output(), "  ODATATOOLS_VALIDATE_STRICT        reject repeated options by default\n")
		Writef(fs.Output(), "  ODATATOOLS_VALIDATE_NO_WARNINGS   suppress warnings by default\n")
		Writef(fs.Output(), "  ODATATOOLS_VALIDATE_KEYS          validate key predicate literals\n")
		Writef(fs.Output(), "  ODATATOOLS_CACHE_ENABLED          cache compiled metadata models\n")
	}

	return fs
}

// HandleMCP executes the mcp command: it blocks until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
