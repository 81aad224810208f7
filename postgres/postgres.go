// Package postgres provides the PostgreSQL dialect renderer for quill.
package postgres

import (
	"encoding/hex"
	"strconv"

	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/internal/types"
)

var quoting = render.QuoteStyle{
	True:       "TRUE",
	False:      "FALSE",
	TimeLayout: "2006-01-02 15:04:05.999999Z07:00",
	Bytes: func(b []byte) string {
		return `'\x` + hex.EncodeToString(b) + `'`
	},
}

// Renderer implements the PostgreSQL dialect.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "postgres".
func (r *Renderer) Name() string { return "postgres" }

// SelectLimit renders " LIMIT count" with an OFFSET when offset is non-zero.
func (r *Renderer) SelectLimit(count, offset int) (string, error) {
	clause := " LIMIT " + strconv.Itoa(count)
	if offset != 0 {
		clause += " OFFSET " + strconv.Itoa(offset)
	}
	return clause, nil
}

// MutationLimit always fails: PostgreSQL has no LIMIT on UPDATE or DELETE.
func (r *Renderer) MutationLimit(_ int) (string, error) {
	return "", render.NewUnsupportedFeatureError(r.Name(), "LIMIT on UPDATE/DELETE",
		"restrict the affected rows with a WHERE condition on a keyed subquery")
}

// Quote renders a value as a PostgreSQL literal.
func (r *Renderer) Quote(v any) (string, error) {
	return quoting.Quote(v)
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		JoinKinds: append(append([]types.JoinKind(nil), render.StandardJoins...), types.JoinNatural),
	}
}
