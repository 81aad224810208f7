package quill

import "strings"

// Sum creates "SUM(expr)".
func Sum(expr string) string { return "SUM(" + expr + ")" }

// Avg creates "AVG(expr)".
func Avg(expr string) string { return "AVG(" + expr + ")" }

// Min creates "MIN(expr)".
func Min(expr string) string { return "MIN(" + expr + ")" }

// Max creates "MAX(expr)".
func Max(expr string) string { return "MAX(" + expr + ")" }

// Count creates "COUNT(expr)", or "COUNT(*)" when expr is empty.
func Count(expr string) string {
	if expr == "" {
		expr = "*"
	}
	return "COUNT(" + expr + ")"
}

// CountDistinct creates "COUNT(DISTINCT expr)".
func CountDistinct(expr string) string { return "COUNT(DISTINCT " + expr + ")" }

// Coalesce creates "COALESCE(a, b, ...)".
func Coalesce(exprs ...string) string {
	return "COALESCE(" + strings.Join(exprs, ", ") + ")"
}

// As aliases an expression: "expr AS alias".
func As(expr, alias string) string { return expr + " AS " + alias }
