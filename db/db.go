// Package db executes quill statements against database/sql drivers through sqlx.
package db

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/quill"
)

// Executor runs rendered statements on an sqlx database handle.
// It implements quill.Executor.
type Executor struct {
	db *sqlx.DB
}

var _ quill.Executor = (*Executor)(nil)

// New wraps an existing handle.
func New(db *sqlx.DB) *Executor {
	return &Executor{db: db}
}

// Open opens a database with the named driver. The driver must be registered
// with database/sql.
func Open(driver, dsn string) (*Executor, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// DB returns the underlying handle.
func (e *Executor) DB() *sqlx.DB {
	return e.db
}

// Close closes the underlying handle.
func (e *Executor) Close() error {
	return e.db.Close()
}

func (e *Executor) bind(query string, params *quill.ParameterSet) (string, []any, error) {
	if params == nil {
		params = quill.NewParameterSet()
	}
	driver := e.db.DriverName()
	return Bind(query, params, sqlx.BindType(driver), BackslashEscapes(driver))
}

func kindOf(query string) string {
	if fields := strings.Fields(query); len(fields) > 0 {
		return strings.ToUpper(fields[0])
	}
	return ""
}

// Insert runs an INSERT and returns the generated id. Drivers without
// LastInsertId support (lib/pq, pgx) report 0.
func (e *Executor) Insert(ctx context.Context, query string, params *quill.ParameterSet) (int64, error) {
	id := uuid.NewString()
	kind := kindOf(query)

	bound, args, err := e.bind(query, params)
	if err != nil {
		return 0, err
	}

	capitan.Debug(ctx, StatementStarted,
		StatementIDKey.Field(id),
		KindKey.Field(kind),
		SQLKey.Field(bound),
	)
	startTime := time.Now()

	res, err := e.db.ExecContext(ctx, bound, args...)
	if err != nil {
		capitan.Error(ctx, StatementFailed,
			StatementIDKey.Field(id),
			KindKey.Field(kind),
			DurationMsKey.Field(time.Since(startTime).Milliseconds()),
			ErrorKey.Field(err.Error()),
		)
		return 0, err
	}

	lastID, err := res.LastInsertId()
	if err != nil {
		lastID = 0
	}

	capitan.Info(ctx, StatementCompleted,
		StatementIDKey.Field(id),
		KindKey.Field(kind),
		DurationMsKey.Field(time.Since(startTime).Milliseconds()),
		LastInsertIDKey.Field(lastID),
	)
	return lastID, nil
}

// Exec runs an UPDATE or DELETE and returns the number of affected rows.
func (e *Executor) Exec(ctx context.Context, query string, params *quill.ParameterSet) (int64, error) {
	id := uuid.NewString()
	kind := kindOf(query)

	bound, args, err := e.bind(query, params)
	if err != nil {
		return 0, err
	}

	capitan.Debug(ctx, StatementStarted,
		StatementIDKey.Field(id),
		KindKey.Field(kind),
		SQLKey.Field(bound),
	)
	startTime := time.Now()

	res, err := e.db.ExecContext(ctx, bound, args...)
	if err == nil {
		var affected int64
		affected, err = res.RowsAffected()
		if err == nil {
			capitan.Info(ctx, StatementCompleted,
				StatementIDKey.Field(id),
				KindKey.Field(kind),
				DurationMsKey.Field(time.Since(startTime).Milliseconds()),
				RowsAffectedKey.Field(affected),
			)
			return affected, nil
		}
	}

	capitan.Error(ctx, StatementFailed,
		StatementIDKey.Field(id),
		KindKey.Field(kind),
		DurationMsKey.Field(time.Since(startTime).Milliseconds()),
		ErrorKey.Field(err.Error()),
	)
	return 0, err
}

// Query runs a SELECT and returns each row as a column map. []byte values are
// converted to strings.
func (e *Executor) Query(ctx context.Context, query string, params *quill.ParameterSet) ([]map[string]any, error) {
	id := uuid.NewString()
	kind := kindOf(query)

	bound, args, err := e.bind(query, params)
	if err != nil {
		return nil, err
	}

	capitan.Debug(ctx, StatementStarted,
		StatementIDKey.Field(id),
		KindKey.Field(kind),
		SQLKey.Field(bound),
	)
	startTime := time.Now()

	fail := func(err error) error {
		capitan.Error(ctx, StatementFailed,
			StatementIDKey.Field(id),
			KindKey.Field(kind),
			DurationMsKey.Field(time.Since(startTime).Milliseconds()),
			ErrorKey.Field(err.Error()),
		)
		return err
	}

	rows, err := e.db.QueryxContext(ctx, bound, args...)
	if err != nil {
		return nil, fail(err)
	}
	defer func() { _ = rows.Close() }()

	var out []map[string]any
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, fail(err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fail(err)
	}

	capitan.Info(ctx, StatementCompleted,
		StatementIDKey.Field(id),
		KindKey.Field(kind),
		DurationMsKey.Field(time.Since(startTime).Milliseconds()),
		RowsReturnedKey.Field(len(out)),
	)
	return out, nil
}
