package quill

import "context"

// Executor runs rendered statements. The db package provides an sqlx-backed
// implementation.
type Executor interface {
	// Insert runs an INSERT and returns the last inserted id.
	Insert(ctx context.Context, sql string, params *ParameterSet) (int64, error)

	// Exec runs an UPDATE or DELETE and returns the number of affected rows.
	Exec(ctx context.Context, sql string, params *ParameterSet) (int64, error)

	// Query runs a SELECT and returns its rows.
	Query(ctx context.Context, sql string, params *ParameterSet) ([]map[string]any, error)
}

// Result is the outcome of Builder.Execute. Only the field matching Kind is set.
type Result struct {
	Kind         StatementKind
	SQL          string
	LastInsertID int64
	RowsAffected int64
	Rows         []map[string]any
}
