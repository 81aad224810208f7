package quill

import (
	"context"
	"fmt"
)

// Execute renders the statement and runs it with ex: INSERT returns the last
// insert id, UPDATE and DELETE the affected row count and SELECT the rows.
// Executor errors are returned unmodified. On success the builder is reset
// with ResetAll and can assemble the next statement.
func (b *Builder) Execute(ctx context.Context, ex Executor) (*Result, error) {
	sql, err := b.Render()
	if err != nil {
		return nil, err
	}

	res := &Result{Kind: b.Kind(), SQL: sql}
	params := b.Parameters()

	switch res.Kind {
	case KindInsert:
		res.LastInsertID, err = ex.Insert(ctx, sql, params)
	case KindUpdate, KindDelete:
		res.RowsAffected, err = ex.Exec(ctx, sql, params)
	case KindSelect:
		res.Rows, err = ex.Query(ctx, sql, params)
	default:
		return nil, fmt.Errorf("unsupported statement kind: %s", res.Kind)
	}
	if err != nil {
		return nil, err
	}

	b.ResetAll()
	return res, nil
}
