// Package odataerrors provides structured error types for odatatools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate rejection responses.
//
// # Error Categories
//
//   - ClassificationError: resource paths that are structurally inconsistent
//     with the OData URL conventions
//   - OptionNotAllowedError: system query options that are not legal for the
//     addressed resource kind
//   - KeyPredicateError: key predicate literals incompatible with the declared
//     key property type
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := urivalidator.ValidateWithOptions(
//	    urivalidator.WithRequest(req),
//	    urivalidator.WithSchema(model),
//	)
//	if err != nil {
//	    var clsErr *odataerrors.ClassificationError
//	    if errors.As(err, &clsErr) {
//	        // The path itself is malformed; reject with 400
//	    }
//	}
package odataerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrClassification indicates the resource path could not be classified.
	ErrClassification = errors.New("classification error")

	// ErrOptionNotAllowed indicates a system query option is not legal for
	// the addressed resource kind.
	ErrOptionNotAllowed = errors.New("system query option not allowed")

	// ErrKeyPredicate indicates a key predicate literal does not match the
	// declared key property type.
	ErrKeyPredicate = errors.New("key predicate error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ClassificationError represents a resource path that is structurally
// inconsistent with the OData URL conventions: an unrecognized segment kind,
// an unsupported root request kind, a qualifying suffix ($count, $ref, $value)
// with no valid preceding segment, or an operation with an unsupported return
// type kind.
type ClassificationError struct {
	// Segment is the offending path segment name, if known (e.g. "$count")
	Segment string
	// Position is the zero-based index of the offending segment (-1 if unknown)
	Position int
	// Message describes the classification failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ClassificationError) Error() string {
	msg := "classification error"
	if e.Segment != "" {
		msg += " at segment " + e.Segment
		if e.Position >= 0 {
			msg += fmt.Sprintf(" (index %d)", e.Position)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ClassificationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

// OptionNotAllowedError represents a system query option that is present on a
// request but not legal for the resource kind the request addresses.
type OptionNotAllowedError struct {
	// Option is the option name, including the $ prefix (e.g. "$expand")
	Option string
	// ResourceKind is the string form of the classified resource kind
	ResourceKind string
	// Message provides additional context about the rejection
	Message string
}

// Error returns a human-readable error message.
func (e *OptionNotAllowedError) Error() string {
	msg := "system query option not allowed"
	if e.Option != "" {
		msg += ": " + e.Option
	}
	if e.ResourceKind != "" {
		msg += " on " + e.ResourceKind
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as OptionNotAllowedError has no underlying cause.
func (e *OptionNotAllowedError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *OptionNotAllowedError) Is(target error) bool {
	return target == ErrOptionNotAllowed
}

// KeyPredicateError represents a key predicate literal that is incompatible
// with the declared type of the key property it addresses.
type KeyPredicateError struct {
	// EntitySet is the entity set whose key is addressed
	EntitySet string
	// Property is the key property name
	Property string
	// Literal is the offending key predicate literal as written in the path
	Literal string
	// ExpectedType is the declared primitive type of the key property
	ExpectedType string
	// Message provides additional context about the mismatch
	Message string
}

// Error returns a human-readable error message.
func (e *KeyPredicateError) Error() string {
	msg := "key predicate error"
	if e.EntitySet != "" {
		msg += " in " + e.EntitySet
		if e.Property != "" {
			msg += "." + e.Property
		}
	}
	if e.Literal != "" {
		msg += fmt.Sprintf(": literal %q", e.Literal)
		if e.ExpectedType != "" {
			msg += " is not a valid " + e.ExpectedType
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as KeyPredicateError has no underlying cause.
func (e *KeyPredicateError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *KeyPredicateError) Is(target error) bool {
	return target == ErrKeyPredicate
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
