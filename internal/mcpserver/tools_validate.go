package mcpserver

import (
	"context"

	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/urivalidator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Request      requestInput   `json:"request"                 jsonschema:"The request shape to validate"`
	Metadata     *metadataInput `json:"metadata,omitempty"      jsonschema:"The metadata document to resolve operation return types and keys against"`
	Strict       *bool          `json:"strict,omitempty"        jsonschema:"Reject repeated system query options"`
	NoWarnings   *bool          `json:"no_warnings,omitempty"   jsonschema:"Suppress warnings from output"`
	ValidateKeys *bool          `json:"validate_keys,omitempty" jsonschema:"Check key predicate literals against declared key property types"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Option  string `json:"option,omitempty"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Kind         string          `json:"kind"`
	Path         string          `json:"path"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}
	validateKeys := cfg.ValidateKeys
	if input.ValidateKeys != nil {
		validateKeys = *input.ValidateKeys
	}

	req, err := input.Request.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	var meta metadataInput
	if input.Metadata != nil {
		meta = *input.Metadata
	}
	model, err := meta.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	var schema edm.OperationLookup
	if model != nil {
		schema = model
	}

	v := urivalidator.New()
	v.StrictMode = strict
	v.IncludeWarnings = !noWarnings
	v.ValidateKeys = validateKeys

	result, err := v.ValidateRequest(req, schema)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		Kind:       result.Kind.String(),
		Path:       result.Path,
		ErrorCount: result.ErrorCount,
	}

	output.Errors = makeSlice[validateIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, validateIssue{
			Path:    e.Path,
			Option:  e.Option,
			Message: e.Message,
		})
	}
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = makeSlice[validateIssue](len(result.Warnings))
		for _, w := range result.Warnings {
			output.Warnings = append(output.Warnings, validateIssue{
				Path:    w.Path,
				Option:  w.Option,
				Message: w.Message,
			})
		}
	}

	return nil, output, nil
}
