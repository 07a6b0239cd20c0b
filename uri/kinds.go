package uri

import "fmt"

// RootKind identifies the root-level kind of a request: which top-level
// resource of the service the request addresses.
type RootKind int

const (
	// RootKindResource addresses a resource path ($entity-set, property,
	// operation, ...). The path segments determine the resource kind.
	RootKindResource RootKind = iota

	// RootKindAll addresses the $all pseudo-resource.
	RootKindAll

	// RootKindBatch addresses the $batch endpoint.
	RootKindBatch

	// RootKindCrossJoin addresses a $crossjoin pseudo-resource.
	RootKindCrossJoin

	// RootKindEntityID addresses an entity by id via $entity.
	RootKindEntityID

	// RootKindMetadata addresses the $metadata document.
	RootKindMetadata

	// RootKindService addresses the service document.
	RootKindService
)

// String returns the string representation of the root kind.
func (k RootKind) String() string {
	switch k {
	case RootKindResource:
		return "resource"
	case RootKindAll:
		return "all"
	case RootKindBatch:
		return "batch"
	case RootKindCrossJoin:
		return "crossjoin"
	case RootKindEntityID:
		return "entityId"
	case RootKindMetadata:
		return "metadata"
	case RootKindService:
		return "service"
	default:
		return "unknown"
	}
}

// ParseRootKind parses the string form used in request documents.
func ParseRootKind(s string) (RootKind, error) {
	switch s {
	case "resource", "":
		// Empty defaults to resource, the common case.
		return RootKindResource, nil
	case "all":
		return RootKindAll, nil
	case "batch":
		return RootKindBatch, nil
	case "crossjoin":
		return RootKindCrossJoin, nil
	case "entityId":
		return RootKindEntityID, nil
	case "metadata":
		return RootKindMetadata, nil
	case "service":
		return RootKindService, nil
	default:
		return RootKindResource, fmt.Errorf("unknown root kind: %q", s)
	}
}

// SegmentKind identifies the syntactic kind of a resource path segment.
type SegmentKind int

const (
	// SegmentEntitySet is an entity set segment, optionally keyed.
	SegmentEntitySet SegmentKind = iota

	// SegmentNavigationProperty is a navigation property segment.
	SegmentNavigationProperty

	// SegmentPrimitiveProperty is a primitive structural property segment.
	SegmentPrimitiveProperty

	// SegmentComplexProperty is a complex structural property segment.
	SegmentComplexProperty

	// SegmentAction is an action invocation segment.
	SegmentAction

	// SegmentFunction is a function invocation segment.
	SegmentFunction

	// SegmentSingleton is a singleton segment.
	SegmentSingleton

	// SegmentCount is a $count suffix segment.
	SegmentCount

	// SegmentRef is a $ref suffix segment.
	SegmentRef

	// SegmentValue is a $value suffix segment.
	SegmentValue

	// SegmentRoot is the empty resource path addressing the service root.
	SegmentRoot
)

// String returns the string representation of the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentEntitySet:
		return "entitySet"
	case SegmentNavigationProperty:
		return "navigationProperty"
	case SegmentPrimitiveProperty:
		return "primitiveProperty"
	case SegmentComplexProperty:
		return "complexProperty"
	case SegmentAction:
		return "action"
	case SegmentFunction:
		return "function"
	case SegmentSingleton:
		return "singleton"
	case SegmentCount:
		return "count"
	case SegmentRef:
		return "ref"
	case SegmentValue:
		return "value"
	case SegmentRoot:
		return "root"
	default:
		return "unknown"
	}
}

// ParseSegmentKind parses the string form used in request documents.
func ParseSegmentKind(s string) (SegmentKind, error) {
	switch s {
	case "entitySet":
		return SegmentEntitySet, nil
	case "navigationProperty":
		return SegmentNavigationProperty, nil
	case "primitiveProperty":
		return SegmentPrimitiveProperty, nil
	case "complexProperty":
		return SegmentComplexProperty, nil
	case "action":
		return SegmentAction, nil
	case "function":
		return SegmentFunction, nil
	case "singleton":
		return SegmentSingleton, nil
	case "count":
		return SegmentCount, nil
	case "ref":
		return SegmentRef, nil
	case "value":
		return SegmentValue, nil
	case "root":
		return SegmentRoot, nil
	default:
		return SegmentEntitySet, fmt.Errorf("unknown segment kind: %q", s)
	}
}

// QueryOptionKind identifies a system query option. The set is closed:
// extending it requires extending the applicability matrix as well.
type QueryOptionKind int

const (
	// OptionFilter is the $filter system query option.
	OptionFilter QueryOptionKind = iota

	// OptionFormat is the $format system query option.
	OptionFormat

	// OptionExpand is the $expand system query option.
	OptionExpand

	// OptionID is the $id system query option.
	OptionID

	// OptionCount is the $count system query option.
	OptionCount

	// OptionOrderBy is the $orderby system query option.
	OptionOrderBy

	// OptionSearch is the $search system query option.
	OptionSearch

	// OptionSelect is the $select system query option.
	OptionSelect

	// OptionSkip is the $skip system query option.
	OptionSkip

	// OptionSkipToken is the $skiptoken system query option.
	OptionSkipToken

	// OptionLevels is the $levels expand option.
	OptionLevels

	// OptionTop is the $top system query option.
	OptionTop
)

// queryOptionCount is the number of system query option kinds; it is the
// column count of the applicability matrix.
const queryOptionCount = 12

// QueryOptionKinds returns all system query option kinds in matrix column
// order.
func QueryOptionKinds() []QueryOptionKind {
	kinds := make([]QueryOptionKind, 0, queryOptionCount)
	for k := OptionFilter; k <= OptionTop; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the option name without the $ prefix.
func (k QueryOptionKind) String() string {
	switch k {
	case OptionFilter:
		return "filter"
	case OptionFormat:
		return "format"
	case OptionExpand:
		return "expand"
	case OptionID:
		return "id"
	case OptionCount:
		return "count"
	case OptionOrderBy:
		return "orderby"
	case OptionSearch:
		return "search"
	case OptionSelect:
		return "select"
	case OptionSkip:
		return "skip"
	case OptionSkipToken:
		return "skiptoken"
	case OptionLevels:
		return "levels"
	case OptionTop:
		return "top"
	default:
		return "unknown"
	}
}

// Name returns the option name as written in a request, including the $
// prefix (e.g. "$filter").
func (k QueryOptionKind) Name() string {
	return "$" + k.String()
}

// ParseQueryOptionKind parses an option name with or without the $ prefix.
func ParseQueryOptionKind(s string) (QueryOptionKind, error) {
	name := s
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}
	switch name {
	case "filter":
		return OptionFilter, nil
	case "format":
		return OptionFormat, nil
	case "expand":
		return OptionExpand, nil
	case "id":
		return OptionID, nil
	case "count":
		return OptionCount, nil
	case "orderby":
		return OptionOrderBy, nil
	case "search":
		return OptionSearch, nil
	case "select":
		return OptionSelect, nil
	case "skip":
		return OptionSkip, nil
	case "skiptoken":
		return OptionSkipToken, nil
	case "levels":
		return OptionLevels, nil
	case "top":
		return OptionTop, nil
	default:
		return OptionFilter, fmt.Errorf("unknown system query option: %q", s)
	}
}
