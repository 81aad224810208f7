package quill

import "github.com/zoobzio/quill/internal/types"

// JoinKind represents the type of SQL join.
type JoinKind = types.JoinKind

// Re-export join kinds for public API.
const (
	JoinInner       = types.JoinInner
	JoinLeft        = types.JoinLeft
	JoinLeftOuter   = types.JoinLeftOuter
	JoinRight       = types.JoinRight
	JoinRightOuter  = types.JoinRightOuter
	JoinFull        = types.JoinFull
	JoinFullOuter   = types.JoinFullOuter
	JoinCross       = types.JoinCross
	JoinLinear      = types.JoinLinear
	JoinLeftLinear  = types.JoinLeftLinear
	JoinRightLinear = types.JoinRightLinear
	JoinNatural     = types.JoinNatural
	JoinOuter       = types.JoinOuter
	JoinUnion       = types.JoinUnion
)

// V creates an INSERT value for Values.
func V(column, expr string) Value {
	return Value{Column: column, Expr: expr}
}
