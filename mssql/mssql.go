// Package mssql provides the SQL Server dialect renderer for quill.
package mssql

import (
	"encoding/hex"
	"strconv"

	"github.com/zoobzio/quill/internal/render"
)

var quoting = render.QuoteStyle{
	True:       "1",
	False:      "0",
	TimeLayout: "2006-01-02T15:04:05.9999999",
	Bytes: func(b []byte) string {
		return "0x" + hex.EncodeToString(b)
	},
}

// Renderer implements the SQL Server dialect.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "mssql".
func (r *Renderer) Name() string { return "mssql" }

// SelectLimit renders " OFFSET o ROWS FETCH NEXT c ROWS ONLY".
// SQL Server uses OFFSET/FETCH instead of LIMIT/OFFSET, and OFFSET/FETCH
// requires ORDER BY (see Capabilities).
func (r *Renderer) SelectLimit(count, offset int) (string, error) {
	return " OFFSET " + strconv.Itoa(offset) + " ROWS FETCH NEXT " + strconv.Itoa(count) + " ROWS ONLY", nil
}

// MutationLimit always fails: SQL Server expresses it as UPDATE TOP (n), which
// does not fit a trailing clause.
func (r *Renderer) MutationLimit(_ int) (string, error) {
	return "", render.NewUnsupportedFeatureError(r.Name(), "LIMIT on UPDATE/DELETE",
		"use a keyed subquery with TOP in the WHERE clause")
}

// Quote renders a value as a T-SQL literal.
func (r *Renderer) Quote(v any) (string, error) {
	return quoting.Quote(v)
}

// Capabilities returns the SQL features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		OffsetRequiresOrder: true,
		JoinKinds:           render.StandardJoins,
	}
}
