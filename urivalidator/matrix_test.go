package urivalidator

import (
	"testing"

	"github.com/erraggy/odatatools/uri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowedOptions enumerates, per resource kind, exactly which system query
// options the URL conventions permit. TestAllowsExhaustive derives the
// expected answer for all 240 (kind, option) pairs from this table, so a
// single flipped cell in the matrix fails the test.
var allowedOptions = map[ResourceKind][]uri.QueryOptionKind{
	KindAll: {
		uri.OptionFilter, uri.OptionFormat, uri.OptionExpand, uri.OptionCount,
		uri.OptionOrderBy, uri.OptionSearch, uri.OptionSelect, uri.OptionSkip,
		uri.OptionSkipToken, uri.OptionLevels,
	},
	KindBatch: {},
	KindCrossJoin: {
		uri.OptionFilter, uri.OptionFormat, uri.OptionExpand, uri.OptionCount,
		uri.OptionOrderBy, uri.OptionSearch, uri.OptionSelect, uri.OptionSkip,
		uri.OptionSkipToken, uri.OptionLevels, uri.OptionTop,
	},
	KindEntityID: {
		uri.OptionFormat, uri.OptionExpand, uri.OptionID, uri.OptionSelect,
		uri.OptionLevels,
	},
	KindMetadata:        {uri.OptionFormat},
	KindServiceRoot:     {uri.OptionFormat},
	KindServiceDocument: {uri.OptionFormat},
	KindEntitySet: {
		uri.OptionFilter, uri.OptionFormat, uri.OptionExpand, uri.OptionCount,
		uri.OptionOrderBy, uri.OptionSearch, uri.OptionSelect, uri.OptionSkip,
		uri.OptionSkipToken, uri.OptionLevels, uri.OptionTop,
	},
	KindEntitySetCount: {},
	KindEntity: {
		uri.OptionFormat, uri.OptionExpand, uri.OptionSelect, uri.OptionLevels,
	},
	KindMediaStream: {uri.OptionFormat},
	KindReferenceCollection: {
		uri.OptionFilter, uri.OptionFormat, uri.OptionOrderBy, uri.OptionSearch,
		uri.OptionSkip, uri.OptionSkipToken, uri.OptionTop,
	},
	KindReference: {uri.OptionFormat},
	KindComplexProperty: {
		uri.OptionFormat, uri.OptionExpand, uri.OptionSelect, uri.OptionLevels,
	},
	KindComplexCollection: {
		uri.OptionFilter, uri.OptionFormat, uri.OptionExpand, uri.OptionCount,
		uri.OptionOrderBy, uri.OptionSkip, uri.OptionSkipToken, uri.OptionLevels,
		uri.OptionTop,
	},
	KindComplexCollectionCount: {},
	KindPrimitiveProperty:      {uri.OptionFormat},
	KindPrimitiveCollection: {
		uri.OptionFilter, uri.OptionFormat, uri.OptionOrderBy, uri.OptionSkip,
		uri.OptionSkipToken, uri.OptionTop,
	},
	KindPrimitiveCollectionCount: {},
	KindPrimitiveValue:           {uri.OptionFormat},
}

func TestAllowsExhaustive(t *testing.T) {
	require.Len(t, allowedOptions, resourceKindCount, "expected table must cover every kind")

	for _, kind := range ResourceKinds() {
		allowed, ok := allowedOptions[kind]
		require.True(t, ok, "no expected options for kind %s", kind)

		allowedSet := make(map[uri.QueryOptionKind]bool, len(allowed))
		for _, opt := range allowed {
			allowedSet[opt] = true
		}

		for _, opt := range uri.QueryOptionKinds() {
			got := kind.Allows(opt)
			assert.Equal(t, allowedSet[opt], got, "kind=%s option=%s", kind, opt.Name())
		}
	}
}

func TestAllowsNotableCells(t *testing.T) {
	// Cells where superficially similar kinds diverge.
	tests := []struct {
		name   string
		kind   ResourceKind
		option uri.QueryOptionKind
		want   bool
	}{
		{"expand on entitySet", KindEntitySet, uri.OptionExpand, true},
		{"expand on entitySetCount", KindEntitySetCount, uri.OptionExpand, false},
		{"id only on entityId", KindEntityID, uri.OptionID, true},
		{"id not on entitySet", KindEntitySet, uri.OptionID, false},
		{"top not on $all", KindAll, uri.OptionTop, false},
		{"top on crossjoin", KindCrossJoin, uri.OptionTop, true},
		{"search on referenceCollection", KindReferenceCollection, uri.OptionSearch, true},
		{"search not on complexCollection", KindComplexCollection, uri.OptionSearch, false},
		{"format on primitiveValue", KindPrimitiveValue, uri.OptionFormat, true},
		{"nothing on batch", KindBatch, uri.OptionFormat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Allows(tt.option))
		})
	}
}

func TestAllowsOutOfRange(t *testing.T) {
	assert.False(t, ResourceKind(-1).Allows(uri.OptionFormat))
	assert.False(t, ResourceKind(resourceKindCount).Allows(uri.OptionFormat))
	assert.False(t, KindEntitySet.Allows(uri.QueryOptionKind(-1)))
	assert.False(t, KindEntitySet.Allows(uri.QueryOptionKind(12)))
}
