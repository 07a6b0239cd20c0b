package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/uri"
	"github.com/erraggy/odatatools/urivalidator"
)

// ClassifyFlags contains flags for the classify command
type ClassifyFlags struct {
	Metadata string
	Format   string
}

// SetupClassifyFlags creates and configures a FlagSet for the classify command.
func SetupClassifyFlags() (*flag.FlagSet, *ClassifyFlags) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	flags := &ClassifyFlags{}

	fs.StringVar(&flags.Metadata, "metadata", "", "YAML metadata document to resolve operation return types against")
	fs.StringVar(&flags.Metadata, "m", "", "YAML metadata document to resolve operation return types against")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: odatatools classify [flags] <request.yaml|->\n\n")
		Writef(fs.Output(), "Classify an OData request shape into its resource kind and list the system\n")
		Writef(fs.Output(), "query options applicable to that kind. Operation segments require --metadata.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  odatatools classify request.yaml\n")
		Writef(fs.Output(), "  odatatools classify --metadata metadata.yaml request.yaml\n")
		Writef(fs.Output(), "  odatatools classify --format json request.yaml | jq '.kind'\n")
	}

	return fs, flags
}

// classifyReport is the serializable form of a classification for structured
// output.
type classifyReport struct {
	Kind           string   `json:"kind" yaml:"kind"`
	Path           string   `json:"path" yaml:"path"`
	AllowedOptions []string `json:"allowed_options,omitempty" yaml:"allowedOptions,omitempty"`
}

// HandleClassify executes the classify command
func HandleClassify(args []string) error {
	fs, flags := SetupClassifyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("classify command requires exactly one request file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	req, err := loadRequestArg(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading request: %w", err)
	}

	var schema edm.OperationLookup
	if flags.Metadata != "" {
		model, err := edm.LoadModelFile(flags.Metadata)
		if err != nil {
			return fmt.Errorf("loading metadata: %w", err)
		}
		schema = model
	}

	kind, err := urivalidator.Classify(req, schema)
	if err != nil {
		return fmt.Errorf("classifying request: %w", err)
	}

	report := classifyReport{
		Kind: kind.String(),
		Path: req.PathString(),
	}
	for _, opt := range uri.QueryOptionKinds() {
		if kind.Allows(opt) {
			report.AllowedOptions = append(report.AllowedOptions, opt.Name())
		}
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(report, flags.Format)
	}

	Writef(os.Stdout, "Resource Path: %s\n", report.Path)
	Writef(os.Stdout, "Resource Kind: %s\n", report.Kind)
	if len(report.AllowedOptions) == 0 {
		Writef(os.Stdout, "Allowed Options: none\n")
		return nil
	}
	Writef(os.Stdout, "Allowed Options:\n")
	for _, opt := range report.AllowedOptions {
		Writef(os.Stdout, "  %s\n", opt)
	}
	return nil
}
