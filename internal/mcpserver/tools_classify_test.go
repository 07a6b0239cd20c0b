package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTool_EntitySet(t *testing.T) {
	content := `kind: resource
path:
  - kind: entitySet
    name: Products
    collection: true
`
	input := classifyInput{
		Request: requestInput{Content: content},
	}
	_, output, err := handleClassify(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "entitySet", output.Kind)
	assert.Equal(t, "Products", output.Path)
	assert.Contains(t, output.AllowedOptions, "$filter")
	assert.Contains(t, output.AllowedOptions, "$top")
	assert.NotContains(t, output.AllowedOptions, "$id")
}

func TestClassifyTool_MediaStreamFunction(t *testing.T) {
	content := `kind: resource
path:
  - kind: function
    name: GetFeaturedAdvertisement
`
	input := classifyInput{
		Request:  requestInput{Content: content},
		Metadata: &metadataInput{Content: testMetadataContent},
	}
	_, output, err := handleClassify(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "mediaStream", output.Kind)
	assert.Equal(t, []string{"$format"}, output.AllowedOptions)
}

func TestClassifyTool_BatchAllowsNothing(t *testing.T) {
	input := classifyInput{
		Request: requestInput{Content: "kind: batch\n"},
	}
	_, output, err := handleClassify(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "batch", output.Kind)
	assert.Empty(t, output.AllowedOptions)
}

func TestClassifyTool_OperationWithoutMetadata(t *testing.T) {
	content := `kind: resource
path:
  - kind: function
    name: GetFeaturedAdvertisement
`
	input := classifyInput{
		Request: requestInput{Content: content},
	}
	result, _, err := handleClassify(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
