// Package issues provides a unified issue type for request validation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/odatatools/internal/severity"
)

// Issue represents a single problem found while validating a request.
type Issue struct {
	// Path is the resource path the issue applies to, in URI form
	// (e.g. "Products/$count")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Option is the system query option the issue concerns, including the $
	// prefix (empty when the issue is not option-specific)
	Option string
	// Value is the problematic value (optional)
	Value any
	// SpecRef is the URL to the relevant section of the OData specification (optional)
	SpecRef string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	subject := i.Path
	if i.Option != "" {
		if subject != "" {
			subject += "?" + i.Option
		} else {
			subject = i.Option
		}
	}

	result := fmt.Sprintf("%s %s: %s", symbol, subject, i.Message)

	if i.SpecRef != "" {
		result += fmt.Sprintf("\n    Spec: %s", i.SpecRef)
	}

	return result
}
