package urivalidator

import (
	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/internal/issues"
	"github.com/erraggy/odatatools/internal/severity"
	"github.com/erraggy/odatatools/odataerrors"
	"github.com/erraggy/odatatools/uri"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a protocol violation that makes the request invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates critical issues
	SeverityCritical = severity.SeverityCritical
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 4
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 2
)

// urlConventionsSpec is the normative reference cited on applicability errors.
const urlConventionsSpec = "http://docs.oasis-open.org/odata/odata/v4.0/os/part2-url-conventions/odata-v4.0-os-part2-url-conventions.html"

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// Result contains the outcome of validating one request.
type Result struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Kind is the resource kind the request was classified as
	Kind ResourceKind
	// Path is the resource path in URI form, as used in issue reporting
	Path string
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int

	// firstErr is the typed error for the first violation, surfaced by Check.
	firstErr error
}

// Validator decides whether request shapes are legal. The zero value is
// usable; New sets the recommended defaults.
//
// A Validator holds only configuration and may be shared across goroutines
// as long as its fields are not mutated after first use.
type Validator struct {
	// IncludeWarnings determines whether to include best practice warnings
	IncludeWarnings bool
	// StrictMode enables stricter validation beyond plain applicability:
	// repeated system query options of the same kind are rejected
	StrictMode bool
	// ValidateKeys enables key predicate literal validation against declared
	// key property types. Requires the schema to implement edm.KeyLookup;
	// schemas without key information are skipped silently.
	ValidateKeys bool
	// Logger receives structured diagnostics during validation.
	// Defaults to NopLogger if not set.
	Logger Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
		StrictMode:      false,
		ValidateKeys:    false,
		Logger:          NopLogger{},
	}
}

func (v *Validator) logger() Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return NopLogger{}
}

// ValidateRequest classifies the request and checks every system query option
// present on it against the applicability rules for the classified kind.
//
// A non-nil error means the path itself could not be classified; no Result is
// produced in that case. Option and key predicate violations do not return an
// error: they are collected in the Result, so one call reports every problem
// on the request.
func (v *Validator) ValidateRequest(req uri.Request, schema edm.OperationLookup) (*Result, error) {
	log := v.logger()

	kind, err := Classify(req, schema)
	if err != nil {
		log.Debug("classification failed", "path", req.PathString(), "error", err)
		return nil, err
	}

	result := &Result{
		Kind:     kind,
		Path:     req.PathString(),
		Errors:   make([]ValidationError, 0, defaultErrorCapacity),
		Warnings: make([]ValidationError, 0, defaultWarningCapacity),
	}
	log.Debug("classified request", "path", result.Path, "kind", kind.String())

	v.validateOptions(result, req, kind)

	if v.IncludeWarnings {
		v.checkUnstablePaging(result, req, kind)
	}

	if v.ValidateKeys {
		if keys, ok := schema.(edm.KeyLookup); ok {
			v.validateKeyPredicates(result, req, keys)
		} else {
			log.Debug("key validation requested but schema does not expose keys")
		}
	}

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	return result, nil
}

// Check is the fail-fast form of ValidateRequest. It returns nil when the
// request is fully legal, a *odataerrors.ClassificationError when the path
// cannot be classified, and the typed error for the first violation
// otherwise. Warnings never fail a Check.
func (v *Validator) Check(req uri.Request, schema edm.OperationLookup) error {
	result, err := v.ValidateRequest(req, schema)
	if err != nil {
		return err
	}
	return result.firstErr
}

// validateOptions checks each present option against the applicability matrix
// and, in strict mode, rejects repeated options.
func (v *Validator) validateOptions(result *Result, req uri.Request, kind ResourceKind) {
	seen := make(map[uri.QueryOptionKind]bool, len(req.Options))

	for _, opt := range req.Options {
		if !kind.Allows(opt.Kind) {
			v.addError(result, result.Path, "system query option not allowed for "+kind.String(),
				withOption(opt.Kind.Name()),
				withValue(opt.Value),
				withSpecRef(urlConventionsSpec),
			)
			if result.firstErr == nil {
				result.firstErr = &odataerrors.OptionNotAllowedError{
					Option:       opt.Kind.Name(),
					ResourceKind: kind.String(),
				}
			}
		}

		if v.StrictMode && seen[opt.Kind] {
			v.addError(result, result.Path, "system query option specified more than once",
				withOption(opt.Kind.Name()),
			)
			if result.firstErr == nil {
				result.firstErr = &odataerrors.OptionNotAllowedError{
					Option:       opt.Kind.Name(),
					ResourceKind: kind.String(),
					Message:      "specified more than once",
				}
			}
		}
		seen[opt.Kind] = true
	}
}

// checkUnstablePaging warns when $top or $skip is used without $orderby on a
// kind that supports ordering: the paging order is unstable across requests.
func (v *Validator) checkUnstablePaging(result *Result, req uri.Request, kind ResourceKind) {
	if !kind.Allows(uri.OptionOrderBy) {
		return
	}

	var hasTop, hasSkip, hasOrderBy bool
	for _, opt := range req.Options {
		switch opt.Kind {
		case uri.OptionTop:
			hasTop = true
		case uri.OptionSkip:
			hasSkip = true
		case uri.OptionOrderBy:
			hasOrderBy = true
		}
	}
	if hasOrderBy {
		return
	}

	if hasTop && kind.Allows(uri.OptionTop) {
		v.addWarning(result, result.Path, "$top without $orderby produces unstable paging",
			withOption(uri.OptionTop.Name()),
		)
	}
	if hasSkip && kind.Allows(uri.OptionSkip) {
		v.addWarning(result, result.Path, "$skip without $orderby produces unstable paging",
			withOption(uri.OptionSkip.Name()),
		)
	}
}

// validateKeyPredicates checks every key literal in the path against the
// declared key property types of its entity set. Entity sets the schema does
// not declare are skipped: the lookup may be partial.
func (v *Validator) validateKeyPredicates(result *Result, req uri.Request, keys edm.KeyLookup) {
	for _, seg := range req.Path {
		if seg.Kind != uri.SegmentEntitySet || len(seg.KeyPredicates) == 0 {
			continue
		}

		declared, ok := keys.EntitySetKeys(seg.Name)
		if !ok {
			v.logger().Debug("entity set has no declared keys, skipping", "entitySet", seg.Name)
			continue
		}

		for _, pred := range seg.KeyPredicates {
			prop, found := resolveKeyProperty(declared, pred)
			if !found {
				v.addError(result, result.Path, "key property not declared for entity set "+seg.Name,
					withValue(pred.Property),
				)
				if result.firstErr == nil {
					result.firstErr = &odataerrors.KeyPredicateError{
						EntitySet: seg.Name,
						Property:  pred.Property,
						Literal:   pred.Literal,
						Message:   "key property not declared",
					}
				}
				continue
			}

			if !prop.Type.MatchesLiteral(pred.Literal) {
				v.addError(result, result.Path,
					"key literal is not a valid "+prop.Type.String()+" for "+seg.Name+"."+prop.Name,
					withValue(pred.Literal),
				)
				if result.firstErr == nil {
					result.firstErr = &odataerrors.KeyPredicateError{
						EntitySet:    seg.Name,
						Property:     prop.Name,
						Literal:      pred.Literal,
						ExpectedType: prop.Type.String(),
					}
				}
			}
		}
	}
}

// resolveKeyProperty matches a predicate to a declared key property. The
// positional shorthand (no property name) binds only when the entity type
// declares exactly one key.
func resolveKeyProperty(declared []edm.KeyProperty, pred uri.KeyPredicate) (edm.KeyProperty, bool) {
	if pred.Property == "" {
		if len(declared) == 1 {
			return declared[0], true
		}
		return edm.KeyProperty{}, false
	}
	for _, kp := range declared {
		if kp.Name == pred.Property {
			return kp, true
		}
	}
	return edm.KeyProperty{}, false
}

// addError appends a validation error to the result.
func (v *Validator) addError(result *Result, path, message string, opts ...func(*ValidationError)) {
	err := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	}
	for _, opt := range opts {
		opt(&err)
	}
	result.Errors = append(result.Errors, err)
}

// addWarning appends a validation warning to the result.
func (v *Validator) addWarning(result *Result, path, message string, opts ...func(*ValidationError)) {
	warn := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	}
	for _, opt := range opts {
		opt(&warn)
	}
	result.Warnings = append(result.Warnings, warn)
}

// withOption sets the option name on an issue.
func withOption(name string) func(*ValidationError) {
	return func(e *ValidationError) {
		e.Option = name
	}
}

// withValue sets the problematic value on an issue.
func withValue(value any) func(*ValidationError) {
	return func(e *ValidationError) {
		e.Value = value
	}
}

// withSpecRef sets the specification reference URL on an issue.
func withSpecRef(url string) func(*ValidationError) {
	return func(e *ValidationError) {
		e.SpecRef = url
	}
}
