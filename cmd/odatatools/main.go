package main

import (
	"fmt"
	"os"

	"github.com/erraggy/odatatools"
	"github.com/erraggy/odatatools/cmd/odatatools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("odatatools v%s\n", odatatools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "classify":
		if err := commands.HandleClassify(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("odatatools - OData URI request validation tools")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  odatatools <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate    Validate a request shape against the URL conventions")
	fmt.Println("  classify    Classify a request shape into its resource kind")
	fmt.Println("  mcp         Run an MCP server over stdio")
	fmt.Println("  version     Print the odatatools version")
	fmt.Println("  help        Print this help message")
	fmt.Println()
	fmt.Println("Run 'odatatools <command> --help' for command-specific flags.")
}
