package urivalidator

import "github.com/erraggy/odatatools/uri"

// applicability is the protocol's decision surface: for every resource kind
// (row) and system query option (column), whether the option is legal on a
// request addressing that kind. The grid is enumerated policy from the OData
// URL conventions, not derived logic, and every cell is significant —
// $expand is legal on entitySet but not on entitySetCount.
//
// Initialized once at package load and never written afterwards, so
// concurrent reads need no locking.
var applicability = [resourceKindCount][12]bool{
	/*                              filter format expand id     count  orderby search select skip   skiptoken levels top */
	/* all                      */ {true, true, true, false, true, true, true, true, true, true, true, false},
	/* batch                    */ {false, false, false, false, false, false, false, false, false, false, false, false},
	/* crossjoin                */ {true, true, true, false, true, true, true, true, true, true, true, true},
	/* entityId                 */ {false, true, true, true, false, false, false, true, false, false, true, false},
	/* metadata                 */ {false, true, false, false, false, false, false, false, false, false, false, false},
	/* serviceRoot              */ {false, true, false, false, false, false, false, false, false, false, false, false},
	/* serviceDocument          */ {false, true, false, false, false, false, false, false, false, false, false, false},
	/* entitySet                */ {true, true, true, false, true, true, true, true, true, true, true, true},
	/* entitySetCount           */ {false, false, false, false, false, false, false, false, false, false, false, false},
	/* entity                   */ {false, true, true, false, false, false, false, true, false, false, true, false},
	/* mediaStream              */ {false, true, false, false, false, false, false, false, false, false, false, false},
	/* referenceCollection      */ {true, true, false, false, false, true, true, false, true, true, false, true},
	/* reference                */ {false, true, false, false, false, false, false, false, false, false, false, false},
	/* complexProperty          */ {false, true, true, false, false, false, false, true, false, false, true, false},
	/* complexCollection        */ {true, true, true, false, true, true, false, false, true, true, true, true},
	/* complexCollectionCount   */ {false, false, false, false, false, false, false, false, false, false, false, false},
	/* primitiveProperty        */ {false, true, false, false, false, false, false, false, false, false, false, false},
	/* primitiveCollection      */ {true, true, false, false, false, true, false, false, true, true, false, true},
	/* primitiveCollectionCount */ {false, false, false, false, false, false, false, false, false, false, false, false},
	/* primitiveValue           */ {false, true, false, false, false, false, false, false, false, false, false, false},
}

// Allows reports whether the given system query option is legal on a request
// addressing this resource kind. The lookup is total: every (kind, option)
// pair has a defined answer, and unknown values of either are simply not
// allowed.
func (k ResourceKind) Allows(option uri.QueryOptionKind) bool {
	if k < 0 || int(k) >= resourceKindCount {
		return false
	}
	if option < uri.OptionFilter || option > uri.OptionTop {
		return false
	}
	return applicability[k][option]
}
