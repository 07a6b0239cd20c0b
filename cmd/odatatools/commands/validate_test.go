package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/odatatools/uri"
	"github.com/erraggy/odatatools/urivalidator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRequestYAML = `kind: resource
path:
  - kind: entitySet
    name: Products
    collection: true
options:
  - option: $filter
    value: Price gt 10
  - option: $orderby
    value: Name
`

const testMetadataYAML = `namespace: Demo.Shop
entityTypes:
  - name: Product
    keys:
      - name: ID
        type: Edm.Int32
entitySets:
  - name: Products
    entityType: Product
`

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	err := fs.Parse([]string{"--strict", "--no-warnings", "--keys", "-m", "metadata.yaml", "--format", "json", "request.yaml"})
	require.NoError(t, err)

	assert.True(t, flags.Strict)
	assert.True(t, flags.NoWarnings)
	assert.True(t, flags.Keys)
	assert.Equal(t, "metadata.yaml", flags.Metadata)
	assert.Equal(t, FormatJSON, flags.Format)
	assert.Equal(t, 1, fs.NArg())
}

func TestSetupValidateFlagsDefaults(t *testing.T) {
	fs, flags := SetupValidateFlags()

	require.NoError(t, fs.Parse([]string{"request.yaml"}))
	assert.False(t, flags.Strict)
	assert.False(t, flags.NoWarnings)
	assert.False(t, flags.Keys)
	assert.False(t, flags.Quiet)
	assert.Equal(t, FormatText, flags.Format)
}

func TestLoadRequestArg(t *testing.T) {
	path := writeRequestFile(t, testRequestYAML)

	req, err := loadRequestArg(path)
	require.NoError(t, err)
	assert.Equal(t, uri.RootKindResource, req.Kind)
	require.Len(t, req.Path, 1)
	assert.Equal(t, "Products", req.Path[0].Name)
	assert.Len(t, req.Options, 2)
}

func TestLoadRequestArgMissingFile(t *testing.T) {
	_, err := loadRequestArg(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestBuildReport(t *testing.T) {
	req := uri.Request{Kind: uri.RootKindResource,
		Path: []uri.Segment{
			{Kind: uri.SegmentEntitySet, Name: "Products", Collection: true},
			{Kind: uri.SegmentCount, Name: "$count"},
		},
		Options: []uri.QueryOption{{Kind: uri.OptionExpand, Value: "Category"}}}

	result, err := urivalidator.ValidateWithOptions(urivalidator.WithRequest(req))
	require.NoError(t, err)

	report := buildReport(result)
	assert.False(t, report.Valid)
	assert.Equal(t, "entitySetCount", report.Kind)
	assert.Equal(t, "Products/$count", report.Path)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "$expand", report.Errors[0].Option)
	assert.Empty(t, report.Warnings)
}

func TestHandleValidateValidRequest(t *testing.T) {
	reqPath := writeRequestFile(t, testRequestYAML)
	metaPath := filepath.Join(t.TempDir(), "metadata.yaml")
	require.NoError(t, os.WriteFile(metaPath, []byte(testMetadataYAML), 0o600))

	// A valid request exits normally, so HandleValidate returns.
	err := HandleValidate([]string{"-q", "-m", metaPath, reqPath})
	assert.NoError(t, err)
}

func TestHandleValidateErrors(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		err := HandleValidate([]string{"--format", "json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one request file")
	})

	t.Run("bad format", func(t *testing.T) {
		err := HandleValidate([]string{"--format", "xml", "request.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("missing request file", func(t *testing.T) {
		err := HandleValidate([]string{filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading request")
	})
}
