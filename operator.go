package quill

import "github.com/zoobzio/quill/internal/types"

// Operator represents SQL comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Basic comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Extended operators.
	IN        = types.IN
	OpNotIn   = types.NotIn
	LIKE      = types.LIKE
	OpNotLike = types.NotLike
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull
)
