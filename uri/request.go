package uri

import "strings"

// KeyPredicate is a single key literal in a path segment, selecting one
// instance from a collection by a key property.
type KeyPredicate struct {
	// Property is the key property name. May be empty for the positional
	// single-key shorthand (e.g. Products(42)).
	Property string
	// Literal is the key value exactly as written in the path, including
	// quotes for string keys.
	Literal string
}

// Segment is one typed step of a resource path. It is a tagged variant: Kind
// selects which of the remaining fields are meaningful.
type Segment struct {
	// Kind is the syntactic kind of the segment.
	Kind SegmentKind

	// Name is the segment text: the entity set, property, singleton, or
	// operation name, or the reserved suffix ($count, $ref, $value).
	Name string

	// Collection is true when the segment's target is declared
	// collection-valued. Meaningful for entity set, navigation property,
	// and structural property segments.
	Collection bool

	// KeyPredicates are the key literals attached to the segment.
	// Meaningful for entity set and navigation property segments.
	KeyPredicates []KeyPredicate

	// Operation references the invoked action or function in the schema
	// lookup. Meaningful for action and function segments; defaults to Name
	// when empty.
	Operation string
}

// IsCollection reports whether the segment denotes a collection of
// instances. An entity set or navigation property segment carrying key
// predicates addresses a single entity and is therefore not
// collection-valued.
func (s Segment) IsCollection() bool {
	switch s.Kind {
	case SegmentEntitySet, SegmentNavigationProperty:
		return s.Collection && len(s.KeyPredicates) == 0
	default:
		return s.Collection
	}
}

// OperationName returns the schema reference for an action or function
// segment, falling back to the segment name.
func (s Segment) OperationName() string {
	if s.Operation != "" {
		return s.Operation
	}
	return s.Name
}

// QueryOption is one system query option present on a request.
type QueryOption struct {
	// Kind identifies the option.
	Kind QueryOptionKind
	// Value is the raw option value as supplied by the client. Validation
	// decides applicability only; it does not interpret values.
	Value string
}

// Request is the structured shape of an OData request as produced by an
// external URI parser: the root request kind, the ordered resource path, and
// the system query options present on the request.
//
// A Request is constructed per incoming request, consumed once by
// validation, and discarded; it carries no state across calls.
type Request struct {
	// Kind is the root-level request kind.
	Kind RootKind
	// Path is the ordered resource path. Meaningful only when Kind is
	// RootKindResource; an empty path addresses the service root.
	Path []Segment
	// Options are the system query options present on the request.
	Options []QueryOption
}

// LastSegment returns the terminal path segment and true, or a zero Segment
// and false for an empty path.
func (r Request) LastSegment() (Segment, bool) {
	if len(r.Path) == 0 {
		return Segment{}, false
	}
	return r.Path[len(r.Path)-1], true
}

// PenultimateSegment returns the second-to-last path segment and true, or a
// zero Segment and false when the path has fewer than two segments.
func (r Request) PenultimateSegment() (Segment, bool) {
	if len(r.Path) < 2 {
		return Segment{}, false
	}
	return r.Path[len(r.Path)-2], true
}

// PathString renders the resource path in URI form, for diagnostics and
// issue reporting (e.g. "Products(42)/Name/$value").
func (r Request) PathString() string {
	if len(r.Path) == 0 {
		return "/"
	}
	var b strings.Builder
	for i, seg := range r.Path {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg.Name)
		if len(seg.KeyPredicates) > 0 {
			b.WriteByte('(')
			for j, key := range seg.KeyPredicates {
				if j > 0 {
					b.WriteByte(',')
				}
				if key.Property != "" {
					b.WriteString(key.Property)
					b.WriteByte('=')
				}
				b.WriteString(key.Literal)
			}
			b.WriteByte(')')
		}
	}
	return b.String()
}
