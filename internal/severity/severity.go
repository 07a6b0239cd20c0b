// Package severity provides severity level constants and utilities for
// issues reported by the urivalidator package.
//
// All severity levels are re-exported by each public package that uses them:
//   - SeverityInfo: Informational messages about decisions made
//   - SeverityWarning: Best-practice violations or recommendations
//   - SeverityError: Protocol violations that make the request invalid
//   - SeverityCritical: Requests that cannot be processed at all
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during request
// validation.
type Severity int

const (
	// SeverityError indicates a protocol violation that makes the request
	// invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates best-practice violations or recommendations
	// that don't prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates requests that cannot be processed at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
