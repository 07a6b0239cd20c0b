// Package uri defines the structured request shape that URI validation
// consumes: the root request kind, the ordered sequence of typed path
// segments, and the system query options present on the request.
//
// Import path: github.com/erraggy/odatatools/uri
//
// odatatools does not parse raw request URIs. The types in this package are
// the contract with an external OData URI parser: the parser produces a
// [Request], validation consumes it. Each [Segment] is a tagged variant
// carrying only the fields relevant to its kind — a collection flag for typed
// segments, key predicates for entity set and navigation segments, and an
// operation reference for action and function segments.
//
// # Building a Request
//
// Construct requests directly:
//
//	req := uri.Request{
//		Kind: uri.RootKindResource,
//		Path: []uri.Segment{
//			{Kind: uri.SegmentEntitySet, Name: "Products", Collection: true},
//			{Kind: uri.SegmentCount, Name: "$count"},
//		},
//		Options: []uri.QueryOption{
//			{Kind: uri.OptionFilter, Value: "Price gt 10"},
//		},
//	}
//
// or load a YAML request description (used by the CLI and MCP tools):
//
//	req, err := uri.LoadRequestFile("request.yaml")
//
// # Collection Semantics
//
// [Segment.IsCollection] is the collection facet the classifier consults. An
// entity set or navigation property segment that carries key predicates
// addresses a single entity, so it is never collection-valued regardless of
// the underlying set's cardinality.
package uri
