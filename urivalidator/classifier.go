package urivalidator

import (
	"fmt"

	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/odataerrors"
	"github.com/erraggy/odatatools/uri"
)

// Classify maps a request shape onto its resource kind. It is a pure
// function of the request and the schema lookup: the same inputs always
// produce the same kind.
//
// Root-level kinds other than resource classify directly. Resource paths
// classify by their terminal segment; the reserved suffixes $count, $ref,
// and $value take a second look at the segment before them, and action or
// function invocations consult the schema for the operation's declared
// return type. Paths that are structurally inconsistent with the protocol
// fail with *odataerrors.ClassificationError.
func Classify(req uri.Request, schema edm.OperationLookup) (ResourceKind, error) {
	switch req.Kind {
	case uri.RootKindAll:
		return KindAll, nil
	case uri.RootKindBatch:
		return KindBatch, nil
	case uri.RootKindCrossJoin:
		return KindCrossJoin, nil
	case uri.RootKindEntityID:
		return KindEntityID, nil
	case uri.RootKindMetadata:
		return KindMetadata, nil
	case uri.RootKindService:
		return KindServiceDocument, nil
	case uri.RootKindResource:
		return classifyResource(req, schema)
	default:
		return KindServiceRoot, &odataerrors.ClassificationError{
			Position: -1,
			Message:  fmt.Sprintf("unsupported root request kind: %s", req.Kind),
		}
	}
}

// classifyResource classifies a resource path by its terminal segment.
func classifyResource(req uri.Request, schema edm.OperationLookup) (ResourceKind, error) {
	last, ok := req.LastSegment()
	if !ok {
		// An empty resource path addresses the service root.
		return KindServiceRoot, nil
	}
	lastIndex := len(req.Path) - 1

	switch last.Kind {
	case uri.SegmentRoot:
		return KindServiceRoot, nil

	case uri.SegmentSingleton:
		return KindEntity, nil

	case uri.SegmentEntitySet, uri.SegmentNavigationProperty:
		if last.IsCollection() {
			return KindEntitySet, nil
		}
		return KindEntity, nil

	case uri.SegmentPrimitiveProperty:
		if last.IsCollection() {
			return KindPrimitiveCollection, nil
		}
		return KindPrimitiveProperty, nil

	case uri.SegmentComplexProperty:
		if last.IsCollection() {
			return KindComplexCollection, nil
		}
		return KindComplexProperty, nil

	case uri.SegmentAction, uri.SegmentFunction:
		return classifyOperation(last, lastIndex, schema)

	case uri.SegmentCount:
		return classifyCount(req, last, lastIndex)

	case uri.SegmentRef:
		return classifyRef(req, last, lastIndex)

	case uri.SegmentValue:
		return classifyValue(req, last, lastIndex)

	default:
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  last.Name,
			Position: lastIndex,
			Message:  fmt.Sprintf("unsupported path segment kind: %s", last.Kind),
		}
	}
}

// classifyOperation derives the kind from the invoked operation's declared
// return type, not from path syntax.
func classifyOperation(seg uri.Segment, pos int, schema edm.OperationLookup) (ResourceKind, error) {
	if schema == nil {
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  "no schema lookup available to resolve operation return type",
		}
	}

	rt, ok := schema.OperationReturnType(seg.OperationName())
	if !ok {
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  fmt.Sprintf("operation not declared in metadata: %s", seg.OperationName()),
		}
	}

	switch rt.Kind {
	case edm.TypeKindEntity:
		if rt.HasStream {
			return KindMediaStream, nil
		}
		if rt.Collection {
			return KindEntitySet, nil
		}
		return KindEntity, nil
	case edm.TypeKindPrimitive:
		if rt.Collection {
			return KindPrimitiveCollection, nil
		}
		return KindPrimitiveProperty, nil
	case edm.TypeKindComplex:
		if rt.Collection {
			return KindComplexCollection, nil
		}
		return KindComplexProperty, nil
	default:
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  fmt.Sprintf("unsupported operation return type kind: %s", rt.Kind),
		}
	}
}

// classifyCount classifies a terminal $count by the segment before it.
func classifyCount(req uri.Request, seg uri.Segment, pos int) (ResourceKind, error) {
	prev, ok := req.PenultimateSegment()
	if !ok {
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  "$count requires a preceding path segment",
		}
	}

	switch prev.Kind {
	case uri.SegmentEntitySet:
		return KindEntitySetCount, nil
	case uri.SegmentComplexProperty:
		return KindComplexCollectionCount, nil
	case uri.SegmentPrimitiveProperty:
		return KindPrimitiveCollectionCount, nil
	default:
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  fmt.Sprintf("unexpected kind in path segment before $count: %s", prev.Kind),
		}
	}
}

// classifyRef classifies a terminal $ref by the collection facet of the
// typed segment before it.
func classifyRef(req uri.Request, seg uri.Segment, pos int) (ResourceKind, error) {
	prev, ok := req.PenultimateSegment()
	if !ok {
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  "$ref requires a preceding path segment",
		}
	}

	switch prev.Kind {
	case uri.SegmentEntitySet, uri.SegmentNavigationProperty, uri.SegmentSingleton:
		if prev.IsCollection() {
			return KindReferenceCollection, nil
		}
		return KindReference, nil
	default:
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  fmt.Sprintf("unexpected kind in path segment before $ref: %s", prev.Kind),
		}
	}
}

// classifyValue classifies a terminal $value by the segment before it: the
// raw value of a primitive property, or the media stream of an entity.
func classifyValue(req uri.Request, seg uri.Segment, pos int) (ResourceKind, error) {
	prev, ok := req.PenultimateSegment()
	if !ok {
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  "$value requires a preceding path segment",
		}
	}

	switch prev.Kind {
	case uri.SegmentPrimitiveProperty:
		return KindPrimitiveValue, nil
	case uri.SegmentEntitySet:
		return KindMediaStream, nil
	default:
		return KindServiceRoot, &odataerrors.ClassificationError{
			Segment:  seg.Name,
			Position: pos,
			Message:  fmt.Sprintf("unexpected kind in path segment before $value: %s", prev.Kind),
		}
	}
}
