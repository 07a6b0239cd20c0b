// Package edm provides the read-only schema lookup that URI validation
// consults: entity types with their media-stream facet and key properties,
// entity sets, singletons, and bound or unbound operations with their declared
// return types.
//
// Import path: github.com/erraggy/odatatools/edm
//
// The package is deliberately small. URI validation needs only a few facts
// from a metadata model, and those facts are expressed as capability
// interfaces so any in-memory representation can satisfy them:
//
//   - [OperationLookup]: given an action or function name, return its declared
//     [ReturnType] (type kind, collection flag, media-stream facet)
//   - [KeyLookup]: given an entity set name, return its declared key
//     properties and their primitive types
//
// # The Model Type
//
// [Model] is a concrete implementation of both interfaces. It can be built in
// code from a [Document]:
//
//	model, err := edm.BuildModel(&edm.Document{
//		Namespace: "ODataDemo",
//		EntityTypes: []edm.EntityTypeDef{
//			{Name: "Product", Keys: []edm.KeyDef{{Name: "ID", Type: "Edm.Int32"}}},
//		},
//		EntitySets: []edm.EntitySetDef{
//			{Name: "Products", EntityType: "Product"},
//		},
//	})
//
// or loaded from a YAML metadata document:
//
//	model, err := edm.LoadModelFile("metadata.yaml")
//
// A Model is immutable after construction and safe for concurrent reads.
//
// # Key Literals
//
// [PrimitiveType] models the primitive types usable as entity key properties
// and knows which path literal forms are compatible with each
// ([PrimitiveType.MatchesLiteral]), following the primitive literal grammar of
// the OData ABNF: quoted strings for Edm.String, bare digits for integer
// types, dashed hex for Edm.Guid, and so on.
package edm
