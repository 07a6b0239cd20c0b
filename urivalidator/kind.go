package urivalidator

// ResourceKind is the semantic category of the resource a request addresses.
// Classification assigns exactly one ResourceKind per request; the kind is
// the row key of the applicability matrix.
type ResourceKind int

const (
	// KindAll is the $all pseudo-resource.
	KindAll ResourceKind = iota

	// KindBatch is the $batch endpoint.
	KindBatch

	// KindCrossJoin is a $crossjoin pseudo-resource.
	KindCrossJoin

	// KindEntityID is an entity addressed by id via $entity.
	KindEntityID

	// KindMetadata is the $metadata document.
	KindMetadata

	// KindServiceRoot is the service root addressed through an empty
	// resource path.
	KindServiceRoot

	// KindServiceDocument is the service document.
	KindServiceDocument

	// KindEntitySet is a collection of entities: a collection-valued entity
	// set, navigation property, or operation return.
	KindEntitySet

	// KindEntitySetCount is the $count of an entity set.
	KindEntitySetCount

	// KindEntity is a single entity: a keyed entity set, a singleton, a
	// single-valued navigation property, or a single-entity operation
	// return.
	KindEntity

	// KindMediaStream is the media stream of a media entity.
	KindMediaStream

	// KindReferenceCollection is the $ref of a collection-valued segment.
	KindReferenceCollection

	// KindReference is the $ref of a single-valued segment.
	KindReference

	// KindComplexProperty is a single-valued complex property.
	KindComplexProperty

	// KindComplexCollection is a collection-valued complex property.
	KindComplexCollection

	// KindComplexCollectionCount is the $count of a complex property
	// collection.
	KindComplexCollectionCount

	// KindPrimitiveProperty is a single-valued primitive property.
	KindPrimitiveProperty

	// KindPrimitiveCollection is a collection-valued primitive property.
	KindPrimitiveCollection

	// KindPrimitiveCollectionCount is the $count of a primitive property
	// collection.
	KindPrimitiveCollectionCount

	// KindPrimitiveValue is the raw $value of a primitive property.
	KindPrimitiveValue
)

// resourceKindCount is the number of resource kinds; it is the row count of
// the applicability matrix.
const resourceKindCount = 20

// ResourceKinds returns all resource kinds in matrix row order.
func ResourceKinds() []ResourceKind {
	kinds := make([]ResourceKind, 0, resourceKindCount)
	for k := KindAll; k <= KindPrimitiveValue; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the string representation of the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindBatch:
		return "batch"
	case KindCrossJoin:
		return "crossjoin"
	case KindEntityID:
		return "entityId"
	case KindMetadata:
		return "metadata"
	case KindServiceRoot:
		return "serviceRoot"
	case KindServiceDocument:
		return "serviceDocument"
	case KindEntitySet:
		return "entitySet"
	case KindEntitySetCount:
		return "entitySetCount"
	case KindEntity:
		return "entity"
	case KindMediaStream:
		return "mediaStream"
	case KindReferenceCollection:
		return "referenceCollection"
	case KindReference:
		return "reference"
	case KindComplexProperty:
		return "complexProperty"
	case KindComplexCollection:
		return "complexCollection"
	case KindComplexCollectionCount:
		return "complexCollectionCount"
	case KindPrimitiveProperty:
		return "primitiveProperty"
	case KindPrimitiveCollection:
		return "primitiveCollection"
	case KindPrimitiveCollectionCount:
		return "primitiveCollectionCount"
	case KindPrimitiveValue:
		return "primitiveValue"
	default:
		return "unknown"
	}
}
