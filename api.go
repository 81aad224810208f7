// Package quill assembles SQL statements from incrementally declared clauses.
//
// A Builder accumulates projection, sources, joins, predicates, grouping,
// ordering, values and limits in any order, then renders one dialect-specific
// SQL string. Rendering is memoized until the next mutation, and structural
// problems (duplicate or unknown aliases, missing clauses) are reported at
// render time, so clauses can be declared before the whole join graph is known.
//
// # Basic Usage
//
//	b := quill.New()
//	sql, err := b.Select().
//		From("users", "u").
//		LeftJoin("u", "posts", "p", "p.user_id = u.id").
//		Where(quill.Eq("u.id", b.CreatePositionalParameter(42))).
//		OrderBy("u.name", "ASC").
//		Limit(10).
//		Render()
//	// SELECT u.* FROM users u LEFT JOIN posts p ON p.user_id = u.id WHERE u.id = ? ORDER BY u.name ASC LIMIT 0,10
//
// # Predicates
//
// WHERE and HAVING hold a tree of AND/OR groups. Where replaces the tree;
// AndWhere and OrWhere combine with it, flattening groups that share an
// operator and nesting the previous tree when the operator changes:
//
//	b.AndWhere("a = 1").AndWhere("b = 2") // WHERE (a = 1 AND b = 2)
//	b.AndWhere("a = 1").OrWhere("b = 2")  // WHERE (a = 1 OR b = 2)
//
// # Parameters
//
// Named and positional placeholders share one counter per builder:
// CreateNamedParameter allocates :dcValue1, :dcValue2, ... and
// CreatePositionalParameter returns "?" bound under the counter value.
//
// # Dialects
//
// MySQL is the default dialect. The postgres, sqlite and mssql packages provide
// the others; pass one with WithDialect. Features a dialect cannot express
// fail with UnsupportedFeatureError.
//
// # Execution
//
// Builder.Execute hands the rendered SQL and parameters to an Executor (see
// the db package) and resets the builder on success.
package quill

import (
	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/internal/types"
)

// Predicate is a node of a WHERE or HAVING tree.
// This is re-exported from internal/types for use by consumers.
type Predicate = types.Predicate

// Leaf is a pre-rendered condition emitted verbatim.
type Leaf = types.Leaf

// Composite groups predicates under AND or OR.
type Composite = types.Composite

// LogicOperator represents how predicates are combined.
type LogicOperator = types.LogicOperator

// Re-export logic operators for public API.
const (
	AND = types.AND
	OR  = types.OR
)

// Slot names a clause of the builder, for Reset.
type Slot = types.Slot

// Re-export slot constants for public API.
const (
	SlotSelect  = types.SlotSelect
	SlotFrom    = types.SlotFrom
	SlotJoin    = types.SlotJoin
	SlotSet     = types.SlotSet
	SlotWhere   = types.SlotWhere
	SlotGroupBy = types.SlotGroupBy
	SlotHaving  = types.SlotHaving
	SlotOrderBy = types.SlotOrderBy
	SlotValues  = types.SlotValues
	SlotLimit   = types.SlotLimit
)

// Source is a table the statement reads from or writes to.
type Source = types.Source

// Join describes a table joined onto a declared source or join.
type Join = types.Join

// Value is one column of an INSERT row.
type Value = types.Value

// Limit holds the row count and offset of a statement.
type Limit = types.Limit

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities
