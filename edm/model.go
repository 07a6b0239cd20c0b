package edm

import "fmt"

// Document is the serializable form of a metadata model. It is the shape
// that YAML metadata documents decode into; BuildModel compiles it into an
// immutable Model after resolving cross-references.
type Document struct {
	// Namespace is the schema namespace (informational).
	Namespace string `yaml:"namespace" json:"namespace"`
	// EntityTypes declares the entity types of the model.
	EntityTypes []EntityTypeDef `yaml:"entityTypes,omitempty" json:"entityTypes,omitempty"`
	// EntitySets declares the entity sets of the entity container.
	EntitySets []EntitySetDef `yaml:"entitySets,omitempty" json:"entitySets,omitempty"`
	// Singletons declares the singletons of the entity container.
	Singletons []SingletonDef `yaml:"singletons,omitempty" json:"singletons,omitempty"`
	// Operations declares actions and functions with their return types.
	Operations []OperationDef `yaml:"operations,omitempty" json:"operations,omitempty"`
}

// EntityTypeDef declares an entity type.
type EntityTypeDef struct {
	// Name is the entity type name, unique within the model.
	Name string `yaml:"name" json:"name"`
	// HasStream is true if the entity type exposes a media stream.
	HasStream bool `yaml:"hasStream,omitempty" json:"hasStream,omitempty"`
	// Keys lists the declared key properties in declaration order.
	Keys []KeyDef `yaml:"keys,omitempty" json:"keys,omitempty"`
}

// KeyDef declares a key property of an entity type.
type KeyDef struct {
	// Name is the property name.
	Name string `yaml:"name" json:"name"`
	// Type is the qualified primitive type name (e.g. "Edm.Int32").
	Type string `yaml:"type" json:"type"`
}

// EntitySetDef declares an entity set in the entity container.
type EntitySetDef struct {
	// Name is the entity set name, unique within the container.
	Name string `yaml:"name" json:"name"`
	// EntityType names the entity type of the set's members.
	EntityType string `yaml:"entityType" json:"entityType"`
}

// SingletonDef declares a singleton in the entity container.
type SingletonDef struct {
	// Name is the singleton name, unique within the container.
	Name string `yaml:"name" json:"name"`
	// EntityType names the entity type of the singleton.
	EntityType string `yaml:"entityType" json:"entityType"`
}

// OperationDef declares an action or function with its return type.
type OperationDef struct {
	// Name is the operation name, unique within the model.
	Name string `yaml:"name" json:"name"`
	// Kind is "action" or "function" (informational; classification uses
	// only the return type).
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Returns describes the declared return type.
	Returns ReturnTypeDef `yaml:"returns" json:"returns"`
}

// ReturnTypeDef declares the return type of an operation.
type ReturnTypeDef struct {
	// Type names the returned type. For entity returns it must name a
	// declared entity type; for primitive/complex returns it is free-form.
	Type string `yaml:"type" json:"type"`
	// TypeKind is "entity", "primitive", or "complex".
	TypeKind string `yaml:"typeKind" json:"typeKind"`
	// Collection is true if the operation returns a collection.
	Collection bool `yaml:"collection,omitempty" json:"collection,omitempty"`
}

// entityType is the compiled form of an EntityTypeDef.
type entityType struct {
	name      string
	hasStream bool
	keys      []KeyProperty
}

// Model is an immutable, compiled metadata model. It satisfies
// OperationLookup and KeyLookup, the two capabilities URI validation needs.
// A Model is safe for concurrent use.
type Model struct {
	namespace   string
	entityTypes map[string]*entityType
	entitySets  map[string]string // entity set name -> entity type name
	singletons  map[string]string // singleton name -> entity type name
	operations  map[string]ReturnType
}

// BuildModel compiles a Document into a Model, resolving entity type
// references and validating key property types. Duplicate names and dangling
// references are reported as errors.
func BuildModel(doc *Document) (*Model, error) {
	if doc == nil {
		return nil, fmt.Errorf("edm: document cannot be nil")
	}

	m := &Model{
		namespace:   doc.Namespace,
		entityTypes: make(map[string]*entityType, len(doc.EntityTypes)),
		entitySets:  make(map[string]string, len(doc.EntitySets)),
		singletons:  make(map[string]string, len(doc.Singletons)),
		operations:  make(map[string]ReturnType, len(doc.Operations)),
	}

	for _, def := range doc.EntityTypes {
		if def.Name == "" {
			return nil, fmt.Errorf("edm: entity type with empty name")
		}
		if _, exists := m.entityTypes[def.Name]; exists {
			return nil, fmt.Errorf("edm: duplicate entity type: %s", def.Name)
		}
		et := &entityType{name: def.Name, hasStream: def.HasStream}
		for _, key := range def.Keys {
			pt := PrimitiveType(key.Type)
			if !pt.IsValid() {
				return nil, fmt.Errorf("edm: entity type %s: key %s has unsupported type %q",
					def.Name, key.Name, key.Type)
			}
			et.keys = append(et.keys, KeyProperty{Name: key.Name, Type: pt})
		}
		m.entityTypes[def.Name] = et
	}

	for _, def := range doc.EntitySets {
		if _, exists := m.entitySets[def.Name]; exists {
			return nil, fmt.Errorf("edm: duplicate entity set: %s", def.Name)
		}
		if _, ok := m.entityTypes[def.EntityType]; !ok {
			return nil, fmt.Errorf("edm: entity set %s references undeclared entity type %q",
				def.Name, def.EntityType)
		}
		m.entitySets[def.Name] = def.EntityType
	}

	for _, def := range doc.Singletons {
		if _, exists := m.singletons[def.Name]; exists {
			return nil, fmt.Errorf("edm: duplicate singleton: %s", def.Name)
		}
		if _, ok := m.entityTypes[def.EntityType]; !ok {
			return nil, fmt.Errorf("edm: singleton %s references undeclared entity type %q",
				def.Name, def.EntityType)
		}
		m.singletons[def.Name] = def.EntityType
	}

	for _, def := range doc.Operations {
		if _, exists := m.operations[def.Name]; exists {
			return nil, fmt.Errorf("edm: duplicate operation: %s", def.Name)
		}
		kind, err := ParseTypeKind(def.Returns.TypeKind)
		if err != nil {
			return nil, fmt.Errorf("edm: operation %s: %w", def.Name, err)
		}
		rt := ReturnType{
			Type:       def.Returns.Type,
			Kind:       kind,
			Collection: def.Returns.Collection,
		}
		if kind == TypeKindEntity {
			et, ok := m.entityTypes[def.Returns.Type]
			if !ok {
				return nil, fmt.Errorf("edm: operation %s returns undeclared entity type %q",
					def.Name, def.Returns.Type)
			}
			rt.HasStream = et.hasStream
		}
		m.operations[def.Name] = rt
	}

	return m, nil
}

// Namespace returns the schema namespace of the model.
func (m *Model) Namespace() string {
	return m.namespace
}

// OperationReturnType resolves the declared return type of an action or
// function. Implements OperationLookup.
func (m *Model) OperationReturnType(name string) (ReturnType, bool) {
	rt, ok := m.operations[name]
	return rt, ok
}

// EntitySetKeys returns the declared key properties of an entity set's
// entity type, in declaration order. Implements KeyLookup.
func (m *Model) EntitySetKeys(entitySet string) ([]KeyProperty, bool) {
	typeName, ok := m.entitySets[entitySet]
	if !ok {
		return nil, false
	}
	et, ok := m.entityTypes[typeName]
	if !ok {
		return nil, false
	}
	return et.keys, true
}

// EntityTypeHasStream reports whether the named entity type declares a media
// stream. The second return value is false when the type is not declared.
func (m *Model) EntityTypeHasStream(name string) (bool, bool) {
	et, ok := m.entityTypes[name]
	if !ok {
		return false, false
	}
	return et.hasStream, true
}

// EntitySetType returns the entity type name of an entity set.
func (m *Model) EntitySetType(entitySet string) (string, bool) {
	typeName, ok := m.entitySets[entitySet]
	return typeName, ok
}

// SingletonType returns the entity type name of a singleton.
func (m *Model) SingletonType(singleton string) (string, bool) {
	typeName, ok := m.singletons[singleton]
	return typeName, ok
}
