package edm

import (
	"regexp"
	"strings"
)

// PrimitiveType identifies a primitive EDM type usable as an entity key
// property. The value is the qualified type name as written in metadata
// documents (e.g. "Edm.Int32").
type PrimitiveType string

// Primitive types supported for key properties.
const (
	PrimitiveString         PrimitiveType = "Edm.String"
	PrimitiveInt16          PrimitiveType = "Edm.Int16"
	PrimitiveInt32          PrimitiveType = "Edm.Int32"
	PrimitiveInt64          PrimitiveType = "Edm.Int64"
	PrimitiveBoolean        PrimitiveType = "Edm.Boolean"
	PrimitiveGuid           PrimitiveType = "Edm.Guid"
	PrimitiveDecimal        PrimitiveType = "Edm.Decimal"
	PrimitiveDouble         PrimitiveType = "Edm.Double"
	PrimitiveDate           PrimitiveType = "Edm.Date"
	PrimitiveDateTimeOffset PrimitiveType = "Edm.DateTimeOffset"
)

// String returns the qualified type name.
func (p PrimitiveType) String() string {
	return string(p)
}

// IsValid reports whether p is one of the supported key property types.
func (p PrimitiveType) IsValid() bool {
	switch p {
	case PrimitiveString, PrimitiveInt16, PrimitiveInt32, PrimitiveInt64,
		PrimitiveBoolean, PrimitiveGuid, PrimitiveDecimal, PrimitiveDouble,
		PrimitiveDate, PrimitiveDateTimeOffset:
		return true
	default:
		return false
	}
}

// Key literal patterns per the OData 4.0 ABNF primitive literal grammar.
// Literals arrive exactly as written in the path, so quoted forms keep their
// quotes.
var (
	integerLiteral  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalLiteral  = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
	doubleLiteral   = regexp.MustCompile(`^([+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?|-?INF|NaN)$`)
	guidLiteral     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	dateLiteral     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	dateTimeLiteral = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}(:[0-9]{2}(\.[0-9]+)?)?(Z|[+-][0-9]{2}:[0-9]{2})$`)
)

// MatchesLiteral reports whether a key predicate literal, exactly as written
// in a resource path, is a lexically valid value of this primitive type.
//
// It checks form, not range: "99999999999999999999" matches Edm.Int32 even
// though it overflows, since range enforcement belongs to request execution,
// not URI validation.
func (p PrimitiveType) MatchesLiteral(literal string) bool {
	switch p {
	case PrimitiveString:
		// Single-quoted, with '' as the escape for an embedded quote.
		if len(literal) < 2 || literal[0] != '\'' || literal[len(literal)-1] != '\'' {
			return false
		}
		inner := literal[1 : len(literal)-1]
		return !strings.Contains(strings.ReplaceAll(inner, "''", ""), "'")
	case PrimitiveInt16, PrimitiveInt32, PrimitiveInt64:
		return integerLiteral.MatchString(literal)
	case PrimitiveBoolean:
		return literal == "true" || literal == "false"
	case PrimitiveGuid:
		return guidLiteral.MatchString(literal)
	case PrimitiveDecimal:
		return decimalLiteral.MatchString(literal)
	case PrimitiveDouble:
		return doubleLiteral.MatchString(literal)
	case PrimitiveDate:
		return dateLiteral.MatchString(literal)
	case PrimitiveDateTimeOffset:
		return dateTimeLiteral.MatchString(literal)
	default:
		return false
	}
}
