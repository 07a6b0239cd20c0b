package edm

import "fmt"

// TypeKind categorizes the declared type of an operation return.
type TypeKind int

const (
	// TypeKindUnknown is the zero value; it never classifies successfully.
	TypeKindUnknown TypeKind = iota

	// TypeKindEntity is a structured type with identity, addressable through
	// an entity set or singleton.
	TypeKindEntity

	// TypeKindPrimitive is a primitive type such as Edm.String or Edm.Int32.
	TypeKindPrimitive

	// TypeKindComplex is a structured type without identity.
	TypeKindComplex
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindEntity:
		return "entity"
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// ParseTypeKind parses the string form used in metadata documents
// ("entity", "primitive", "complex") into a TypeKind.
func ParseTypeKind(s string) (TypeKind, error) {
	switch s {
	case "entity":
		return TypeKindEntity, nil
	case "primitive":
		return TypeKindPrimitive, nil
	case "complex":
		return TypeKindComplex, nil
	default:
		return TypeKindUnknown, fmt.Errorf("unknown type kind: %q", s)
	}
}

// ReturnType describes the declared return type of an action or function:
// everything the classifier needs to map an operation invocation onto a
// resource kind.
type ReturnType struct {
	// Type is the name of the returned type (e.g. "Product" or "Edm.String").
	Type string
	// Kind is the category of the returned type.
	Kind TypeKind
	// Collection is true if the operation returns a collection of instances.
	Collection bool
	// HasStream is true if Kind is TypeKindEntity and the entity type
	// declares a media stream.
	HasStream bool
}

// KeyProperty is a single declared key property of an entity type.
type KeyProperty struct {
	// Name is the property name.
	Name string
	// Type is the declared primitive type of the property.
	Type PrimitiveType
}

// OperationLookup resolves the declared return type of a bound or unbound
// action or function. The second return value is false when the operation is
// not declared in the model.
//
// Implementations must be safe for concurrent use; validation performs only
// reads.
type OperationLookup interface {
	OperationReturnType(name string) (ReturnType, bool)
}

// KeyLookup exposes the declared key properties of an entity set's entity
// type, in declaration order. The second return value is false when the
// entity set is not declared in the model.
type KeyLookup interface {
	EntitySetKeys(entitySet string) ([]KeyProperty, bool)
}
