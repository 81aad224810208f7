package quill

import (
	"fmt"
	"strings"

	"github.com/zoobzio/quill/internal/types"
)

// C creates a comparison "left op right". Both sides are emitted verbatim, so
// right is usually a placeholder from CreateNamedParameter or
// CreatePositionalParameter, or a quoted literal.
func C(left string, op Operator, right string) Leaf {
	return Leaf(left + " " + string(op) + " " + right)
}

// Eq creates "left = right".
func Eq(left, right string) Leaf { return C(left, types.EQ, right) }

// Neq creates "left <> right".
func Neq(left, right string) Leaf { return C(left, types.NE, right) }

// Lt creates "left < right".
func Lt(left, right string) Leaf { return C(left, types.LT, right) }

// Lte creates "left <= right".
func Lte(left, right string) Leaf { return C(left, types.LE, right) }

// Gt creates "left > right".
func Gt(left, right string) Leaf { return C(left, types.GT, right) }

// Gte creates "left >= right".
func Gte(left, right string) Leaf { return C(left, types.GE, right) }

// Like creates "left LIKE pattern".
func Like(left, pattern string) Leaf { return C(left, types.LIKE, pattern) }

// NotLike creates "left NOT LIKE pattern".
func NotLike(left, pattern string) Leaf { return C(left, types.NotLike, pattern) }

// In creates "left IN (a, b, ...)".
func In(left string, values ...string) Leaf {
	return C(left, types.IN, "("+strings.Join(values, ", ")+")")
}

// NotIn creates "left NOT IN (a, b, ...)".
func NotIn(left string, values ...string) Leaf {
	return C(left, types.NotIn, "("+strings.Join(values, ", ")+")")
}

// Null creates "expr IS NULL".
func Null(expr string) Leaf {
	return Leaf(expr + " " + string(types.IsNull))
}

// NotNull creates "expr IS NOT NULL".
func NotNull(expr string) Leaf {
	return Leaf(expr + " " + string(types.IsNotNull))
}

// TryAnd groups conditions with AND, returning an error if invalid.
// Conditions are strings or Predicates.
func TryAnd(conds ...any) (Predicate, error) {
	return group(types.AND, conds)
}

// And groups conditions with AND.
func And(conds ...any) Predicate {
	p, err := TryAnd(conds...)
	if err != nil {
		panic(err)
	}
	return p
}

// TryOr groups conditions with OR, returning an error if invalid.
func TryOr(conds ...any) (Predicate, error) {
	return group(types.OR, conds)
}

// Or groups conditions with OR.
func Or(conds ...any) Predicate {
	p, err := TryOr(conds...)
	if err != nil {
		panic(err)
	}
	return p
}

func group(logic types.LogicOperator, conds []any) (Predicate, error) {
	parts, err := predicates(conds)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s requires at least one condition", logic)
	}
	return types.NewComposite(logic, parts...), nil
}

// predicates converts builder arguments to predicate nodes. Strings become
// leaves, Predicates are cloned and nils are skipped.
func predicates(conds []any) ([]types.Predicate, error) {
	parts := make([]types.Predicate, 0, len(conds))
	for _, cond := range conds {
		switch c := cond.(type) {
		case nil:
		case string:
			parts = append(parts, types.Leaf(c))
		case *types.Composite:
			if c != nil {
				parts = append(parts, c.Clone())
			}
		case types.Predicate:
			parts = append(parts, c.Clone())
		default:
			return nil, fmt.Errorf("condition must be a string or Predicate, got %T", cond)
		}
	}
	return parts, nil
}
