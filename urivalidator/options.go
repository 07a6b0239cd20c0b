package urivalidator

import (
	"fmt"

	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/internal/options"
	"github.com/erraggy/odatatools/odataerrors"
	"github.com/erraggy/odatatools/uri"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Request source (exactly one must be set)
	request     *uri.Request
	requestFile *string

	// Schema source (at most one may be set)
	schema       edm.OperationLookup
	metadataFile *string

	// Configuration options
	includeWarnings bool
	strictMode      bool
	validateKeys    bool
	logger          Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		// Set defaults to match Validator defaults
		includeWarnings: true,
		strictMode:      false,
		validateKeys:    false,
		logger:          NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one request source is specified
	if err := options.ValidateSingleInputSource(
		"must specify a request source (use WithRequest or WithRequestFile)",
		"must specify exactly one request source",
		cfg.request != nil, cfg.requestFile != nil,
	); err != nil {
		return nil, err
	}

	// The schema is optional, but at most one source may provide it
	if cfg.schema != nil && cfg.metadataFile != nil {
		return nil, &odataerrors.ConfigError{
			Option:  "WithMetadataFile",
			Message: "must specify at most one schema source",
		}
	}

	return cfg, nil
}

// ValidateWithOptions validates an OData request shape using functional
// options. This provides a flexible, extensible API that combines input
// source selection and configuration in a single function call.
//
// Example:
//
//	result, err := urivalidator.ValidateWithOptions(
//	    urivalidator.WithRequestFile("request.yaml"),
//	    urivalidator.WithMetadataFile("metadata.yaml"),
//	    urivalidator.WithStrictMode(true),
//	)
func ValidateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("urivalidator: invalid options: %w", err)
	}

	var req uri.Request
	if cfg.request != nil {
		req = *cfg.request
	} else {
		// cfg.requestFile must be non-nil here (validated by applyOptions)
		loaded, err := uri.LoadRequestFile(*cfg.requestFile)
		if err != nil {
			return nil, fmt.Errorf("urivalidator: loading request: %w", err)
		}
		req = loaded
	}

	schema := cfg.schema
	if cfg.metadataFile != nil {
		model, err := edm.LoadModelFile(*cfg.metadataFile)
		if err != nil {
			return nil, fmt.Errorf("urivalidator: loading metadata: %w", err)
		}
		schema = model
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		ValidateKeys:    cfg.validateKeys,
		Logger:          cfg.logger,
	}
	return v.ValidateRequest(req, schema)
}

// WithRequest specifies an in-memory request shape as the input source
func WithRequest(req uri.Request) Option {
	return func(cfg *validateConfig) error {
		cfg.request = &req
		return nil
	}
}

// WithRequestFile specifies a YAML request shape file as the input source
func WithRequestFile(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.requestFile = &path
		return nil
	}
}

// WithSchema specifies an in-memory schema lookup for operation return types.
// If the lookup also implements edm.KeyLookup, key predicate validation can
// use it.
func WithSchema(schema edm.OperationLookup) Option {
	return func(cfg *validateConfig) error {
		cfg.schema = schema
		return nil
	}
}

// WithMetadataFile specifies a YAML metadata document to load the schema from
func WithMetadataFile(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.metadataFile = &path
		return nil
	}
}

// WithIncludeWarnings enables or disables best practice warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict validation beyond plain
// applicability
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithKeyValidation enables or disables key predicate literal validation
// Default: false
func WithKeyValidation(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.validateKeys = enabled
		return nil
	}
}

// WithLogger sets the logger used for diagnostics during validation.
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(cfg *validateConfig) error {
		if logger == nil {
			return &odataerrors.ConfigError{
				Option:  "WithLogger",
				Message: "logger must not be nil",
			}
		}
		cfg.logger = logger
		return nil
	}
}
