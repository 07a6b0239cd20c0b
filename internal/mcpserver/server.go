// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes odatatools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/odatatools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `odatatools MCP server — classifies and validates OData request shapes against the URL conventions.

Configuration: All defaults are configurable via ODATATOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- ODATATOOLS_METADATA_FILE — default metadata document used when a tool call provides none
- ODATATOOLS_VALIDATE_STRICT (default: false) — reject repeated query options by default
- ODATATOOLS_VALIDATE_NO_WARNINGS (default: false) — suppress warnings by default
- ODATATOOLS_VALIDATE_KEYS (default: false) — check key predicate literals against declared key types
- ODATATOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for compiled metadata models
- ODATATOOLS_CACHE_ENABLED (default: true) — disable metadata caching entirely

Caching: Compiled metadata models are cached per session, keyed by path+mtime (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		modelCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "odatatools", Version: odatatools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OData request shape: classify its resource path into a resource kind and check every system query option against the applicability rules for that kind. Returns errors and warnings. Strict mode, warning suppression, and key validation defaults are configurable via ODATATOOLS_VALIDATE_STRICT, ODATATOOLS_VALIDATE_NO_WARNINGS, and ODATATOOLS_VALIDATE_KEYS env vars.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Classify an OData request shape into its resource kind (entitySet, entity, entitySetCount, mediaStream, ...) without checking query options. Also returns which system query options are applicable to the classified kind. Operation segments require a metadata document to resolve their return type.",
	}, handleClassify)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
