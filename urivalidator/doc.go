// Package urivalidator decides whether an OData request shape is legal: it
// classifies the resource path into a resource kind and checks every system
// query option present on the request against the protocol's applicability
// rules.
//
// Import path: github.com/erraggy/odatatools/urivalidator
//
// # The Decision
//
// Validation is two lookups chained together:
//
//  1. Classification: the resource path (plus the root request kind) maps to
//     exactly one [ResourceKind] out of twenty. Most paths classify by their
//     terminal segment alone; the reserved suffixes $count, $ref, and $value
//     classify by the segment before them, and action/function invocations
//     classify by their declared return type in the metadata model.
//  2. Applicability: a fixed 20×12 matrix — resource kinds by system query
//     options — says whether each present option is legal for that kind.
//
// The matrix is protocol policy, not derived logic. Superficially similar
// kinds differ materially: $expand is legal on an entity set but illegal on
// the $count of that same entity set.
//
// # Basic Usage
//
// For one-off validation, use the functional options entry point:
//
//	result, err := urivalidator.ValidateWithOptions(
//	    urivalidator.WithRequest(req),
//	    urivalidator.WithSchema(model),
//	)
//	if err != nil {
//	    // the path itself could not be classified
//	}
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e.String())
//	    }
//	}
//
// For validating many requests with the same configuration, create a
// Validator instance:
//
//	v := urivalidator.New()
//	v.StrictMode = true
//
//	result1, err := v.ValidateRequest(req1, model)
//	result2, err := v.ValidateRequest(req2, model)
//
// The fail-fast form returns a typed error for the first violation:
//
//	if err := v.Check(req, model); err != nil {
//	    var optErr *odataerrors.OptionNotAllowedError
//	    if errors.As(err, &optErr) {
//	        // reject with 400, naming optErr.Option
//	    }
//	}
//
// # Warnings and Strict Mode
//
// Beyond the protocol matrix, the validator can report best-practice
// warnings (enabled by default, suppress with IncludeWarnings=false):
//
//   - $top or $skip without $orderby on a collection: the paging order is
//     unstable across requests
//
// Strict mode adds checks beyond plain applicability:
//
//   - repeated system query options of the same kind are rejected (the
//     protocol forbids specifying an option more than once)
//
// # Key Predicate Validation
//
// When enabled with ValidateKeys (or WithKeyValidation) and the schema also
// implements [edm.KeyLookup], key predicate literals in the path are checked
// against the declared key property types of the addressed entity set. This
// is off by default: callers with their own key policy keep the decision.
//
// # Concurrency
//
// Classification and validation are pure functions over the request shape and
// the schema lookup. A Validator holds only configuration; one instance may
// be used from any number of goroutines concurrently as long as its fields
// are not mutated after first use.
package urivalidator
