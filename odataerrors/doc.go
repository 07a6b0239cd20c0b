// Package odataerrors provides structured error types for the odatatools library.
//
// Import path: github.com/erraggy/odatatools/odataerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and map
// them onto appropriate request rejections.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ClassificationError]: resource paths structurally inconsistent with the
//     OData URL conventions
//   - [OptionNotAllowedError]: system query options illegal for the addressed
//     resource kind
//   - [KeyPredicateError]: key predicate literals incompatible with the
//     declared key property type
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrClassification]: Matches any [ClassificationError]
//   - [ErrOptionNotAllowed]: Matches any [OptionNotAllowedError]
//   - [ErrKeyPredicate]: Matches any [KeyPredicateError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	err := v.Check(req, model)
//	if errors.Is(err, odataerrors.ErrOptionNotAllowed) {
//	    // 400 Bad Request: option illegal for this resource kind
//	}
//
// Extract error details with errors.As():
//
//	var optErr *odataerrors.OptionNotAllowedError
//	if errors.As(err, &optErr) {
//	    fmt.Printf("option %s is not allowed on %s\n", optErr.Option, optErr.ResourceKind)
//	}
//
// # Determinism
//
// All errors produced by odatatools are deterministic for a given request
// shape and metadata model; none are transient, so no retry handling applies.
package odataerrors
