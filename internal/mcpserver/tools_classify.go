package mcpserver

import (
	"context"

	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/uri"
	"github.com/erraggy/odatatools/urivalidator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type classifyInput struct {
	Request  requestInput   `json:"request"            jsonschema:"The request shape to classify"`
	Metadata *metadataInput `json:"metadata,omitempty" jsonschema:"The metadata document to resolve operation return types against"`
}

type classifyOutput struct {
	Kind           string   `json:"kind"`
	Path           string   `json:"path"`
	AllowedOptions []string `json:"allowed_options,omitempty"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	req, err := input.Request.resolve()
	if err != nil {
		return errResult(err), classifyOutput{}, nil
	}

	var meta metadataInput
	if input.Metadata != nil {
		meta = *input.Metadata
	}
	model, err := meta.resolve()
	if err != nil {
		return errResult(err), classifyOutput{}, nil
	}
	var schema edm.OperationLookup
	if model != nil {
		schema = model
	}

	kind, err := urivalidator.Classify(req, schema)
	if err != nil {
		return errResult(err), classifyOutput{}, nil
	}

	output := classifyOutput{
		Kind: kind.String(),
		Path: req.PathString(),
	}
	for _, opt := range uri.QueryOptionKinds() {
		if kind.Allows(opt) {
			output.AllowedOptions = append(output.AllowedOptions, opt.Name())
		}
	}

	return nil, output, nil
}
