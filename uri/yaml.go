package uri

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// RequestDoc is the serializable form of a Request, with kinds spelled as
// strings. It is the shape that YAML request descriptions decode into;
// BuildRequest compiles it into a Request.
type RequestDoc struct {
	// Kind is the root request kind ("resource", "all", "batch",
	// "crossjoin", "entityId", "metadata", "service"). Empty means
	// "resource".
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Path is the ordered resource path.
	Path []SegmentDoc `yaml:"path,omitempty" json:"path,omitempty"`
	// Options are the system query options present on the request.
	Options []OptionDoc `yaml:"options,omitempty" json:"options,omitempty"`
}

// SegmentDoc is the serializable form of a Segment.
type SegmentDoc struct {
	Kind       string   `yaml:"kind" json:"kind"`
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Collection bool     `yaml:"collection,omitempty" json:"collection,omitempty"`
	Keys       []KeyDoc `yaml:"keys,omitempty" json:"keys,omitempty"`
	Operation  string   `yaml:"operation,omitempty" json:"operation,omitempty"`
}

// KeyDoc is the serializable form of a KeyPredicate.
type KeyDoc struct {
	Property string `yaml:"property,omitempty" json:"property,omitempty"`
	Literal  string `yaml:"literal" json:"literal"`
}

// OptionDoc is the serializable form of a QueryOption. Option accepts the
// name with or without the $ prefix.
type OptionDoc struct {
	Option string `yaml:"option" json:"option"`
	Value  string `yaml:"value,omitempty" json:"value,omitempty"`
}

// BuildRequest compiles a RequestDoc into a Request, resolving string kinds.
func BuildRequest(doc *RequestDoc) (Request, error) {
	if doc == nil {
		return Request{}, fmt.Errorf("uri: request document cannot be nil")
	}

	rootKind, err := ParseRootKind(doc.Kind)
	if err != nil {
		return Request{}, fmt.Errorf("uri: %w", err)
	}

	req := Request{Kind: rootKind}
	for i, segDoc := range doc.Path {
		segKind, err := ParseSegmentKind(segDoc.Kind)
		if err != nil {
			return Request{}, fmt.Errorf("uri: path segment %d: %w", i, err)
		}
		seg := Segment{
			Kind:       segKind,
			Name:       segDoc.Name,
			Collection: segDoc.Collection,
			Operation:  segDoc.Operation,
		}
		if seg.Name == "" {
			seg.Name = defaultSegmentName(segKind)
		}
		for _, keyDoc := range segDoc.Keys {
			seg.KeyPredicates = append(seg.KeyPredicates, KeyPredicate{
				Property: keyDoc.Property,
				Literal:  keyDoc.Literal,
			})
		}
		req.Path = append(req.Path, seg)
	}

	for i, optDoc := range doc.Options {
		optKind, err := ParseQueryOptionKind(optDoc.Option)
		if err != nil {
			return Request{}, fmt.Errorf("uri: option %d: %w", i, err)
		}
		req.Options = append(req.Options, QueryOption{Kind: optKind, Value: optDoc.Value})
	}

	return req, nil
}

// defaultSegmentName supplies the reserved segment text for suffix kinds so
// request documents need not repeat it.
func defaultSegmentName(kind SegmentKind) string {
	switch kind {
	case SegmentCount:
		return "$count"
	case SegmentRef:
		return "$ref"
	case SegmentValue:
		return "$value"
	default:
		return ""
	}
}

// LoadRequest decodes a YAML request description into a Request.
func LoadRequest(data []byte) (Request, error) {
	var doc RequestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Request{}, fmt.Errorf("uri: failed to decode request document: %w", err)
	}
	return BuildRequest(&doc)
}

// LoadRequestFile reads a YAML request description from disk.
func LoadRequestFile(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("uri: failed to read request document: %w", err)
	}
	return LoadRequest(data)
}
