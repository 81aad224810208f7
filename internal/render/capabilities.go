package render

import "github.com/zoobzio/quill/internal/types"

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	MutationJoins       bool             // joins and multi-table targets on UPDATE/DELETE
	OffsetRequiresOrder bool             // SELECT limits need an ORDER BY (OFFSET/FETCH)
	JoinKinds           []types.JoinKind // accepted join kinds; nil accepts all
}

// SupportsJoin reports whether the dialect accepts the join kind.
func (c Capabilities) SupportsJoin(kind types.JoinKind) bool {
	if c.JoinKinds == nil {
		return true
	}
	for _, k := range c.JoinKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// StandardJoins are the join kinds of ANSI SQL, as accepted by most engines.
var StandardJoins = []types.JoinKind{
	types.JoinInner,
	types.JoinLeft,
	types.JoinLeftOuter,
	types.JoinRight,
	types.JoinRightOuter,
	types.JoinFull,
	types.JoinFullOuter,
	types.JoinCross,
}
