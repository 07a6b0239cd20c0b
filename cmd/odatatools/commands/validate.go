package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/odatatools"
	"github.com/erraggy/odatatools/uri"
	"github.com/erraggy/odatatools/urivalidator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Metadata   string
	Strict     bool
	NoWarnings bool
	Keys       bool
	Quiet      bool
	Verbose    bool
	Format     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Metadata, "metadata", "", "YAML metadata document to resolve operation return types and keys against")
	fs.StringVar(&flags.Metadata, "m", "", "YAML metadata document to resolve operation return types and keys against")
	fs.BoolVar(&flags.Strict, "strict", false, "reject system query options specified more than once")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Keys, "keys", false, "check key predicate literals against declared key property types")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log classification and validation diagnostics to stderr")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: odatatools validate [flags] <request.yaml|->\n\n")
		Writef(fs.Output(), "Validate an OData request shape: classify its resource path and check every\n")
		Writef(fs.Output(), "system query option against the applicability rules for the classified kind.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  odatatools validate request.yaml\n")
		Writef(fs.Output(), "  odatatools validate --metadata metadata.yaml request.yaml\n")
		Writef(fs.Output(), "  odatatools validate --strict --keys -m metadata.yaml request.yaml\n")
		Writef(fs.Output(), "  cat request.yaml | odatatools validate -q -\n")
		Writef(fs.Output(), "  odatatools validate --format json request.yaml | jq '.valid'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// validateReport is the serializable form of a validation result for
// structured output.
type validateReport struct {
	Valid        bool          `json:"valid" yaml:"valid"`
	Kind         string        `json:"kind" yaml:"kind"`
	Path         string        `json:"path" yaml:"path"`
	ErrorCount   int           `json:"error_count" yaml:"errorCount"`
	WarningCount int           `json:"warning_count" yaml:"warningCount"`
	Errors       []reportIssue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings     []reportIssue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type reportIssue struct {
	Path    string `json:"path" yaml:"path"`
	Option  string `json:"option,omitempty" yaml:"option,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func buildReport(result *urivalidator.Result) validateReport {
	report := validateReport{
		Valid:        result.Valid,
		Kind:         result.Kind.String(),
		Path:         result.Path,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
	}
	for _, e := range result.Errors {
		report.Errors = append(report.Errors, reportIssue{Path: e.Path, Option: e.Option, Message: e.Message})
	}
	for _, w := range result.Warnings {
		report.Warnings = append(report.Warnings, reportIssue{Path: w.Path, Option: w.Option, Message: w.Message})
	}
	return report
}

// loadRequestArg reads the request shape from a file path or stdin ("-").
func loadRequestArg(path string) (uri.Request, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return uri.Request{}, fmt.Errorf("reading stdin: %w", err)
		}
		return uri.LoadRequest(data)
	}
	return uri.LoadRequestFile(path)
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one request file path or '-' for stdin")
	}

	requestPath := fs.Arg(0)

	// Validate format flag early to fail fast
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	req, err := loadRequestArg(requestPath)
	if err != nil {
		return fmt.Errorf("loading request: %w", err)
	}

	startTime := time.Now()

	opts := []urivalidator.Option{
		urivalidator.WithRequest(req),
		urivalidator.WithStrictMode(flags.Strict),
		urivalidator.WithIncludeWarnings(!flags.NoWarnings),
		urivalidator.WithKeyValidation(flags.Keys),
	}
	if flags.Metadata != "" {
		opts = append(opts, urivalidator.WithMetadataFile(flags.Metadata))
	}
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, urivalidator.WithLogger(urivalidator.NewSlogAdapter(slog.New(handler))))
	}

	result, err := urivalidator.ValidateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("validating request: %w", err)
	}
	totalTime := time.Since(startTime)

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(buildReport(result), flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	// Text format output (always to stderr to keep stdout clean for piping)
	if !flags.Quiet {
		Writef(os.Stderr, "OData Request Validator\n")
		Writef(os.Stderr, "=======================\n\n")
		Writef(os.Stderr, "odatatools version: %s\n", odatatools.Version())
		Writef(os.Stderr, "Request: %s\n", FormatRequestPath(requestPath))
		Writef(os.Stderr, "Resource Path: %s\n", result.Path)
		Writef(os.Stderr, "Resource Kind: %s\n", result.Kind)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Errors) > 0 {
			Writef(os.Stderr, "Errors (%d):\n", result.ErrorCount)
			for _, e := range result.Errors {
				Writef(os.Stderr, "  %s\n", e.String())
			}
			Writef(os.Stderr, "\n")
		}

		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "Warnings (%d):\n", result.WarningCount)
			for _, warning := range result.Warnings {
				Writef(os.Stderr, "  %s\n", warning.String())
			}
			Writef(os.Stderr, "\n")
		}

		if result.Valid {
			Writef(os.Stderr, "✓ Validation passed")
			if result.WarningCount > 0 {
				Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		} else {
			Writef(os.Stderr, "✗ Validation failed: %d error(s)", result.ErrorCount)
			if result.WarningCount > 0 {
				Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Exit with error if validation failed
	if !result.Valid {
		os.Exit(1)
	}

	return nil
}
