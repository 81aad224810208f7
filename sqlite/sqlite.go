// Package sqlite provides the SQLite dialect renderer for quill.
package sqlite

import (
	"strconv"

	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/internal/types"
)

// SQLite has no boolean type; TRUE and FALSE are aliases for 1 and 0.
var quoting = render.QuoteStyle{
	True:       "1",
	False:      "0",
	TimeLayout: "2006-01-02 15:04:05.999999999-07:00",
	Bytes:      render.HexBytes,
}

// Renderer implements the SQLite dialect.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "sqlite".
func (r *Renderer) Name() string { return "sqlite" }

// SelectLimit renders " LIMIT count" with an OFFSET when offset is non-zero.
func (r *Renderer) SelectLimit(count, offset int) (string, error) {
	clause := " LIMIT " + strconv.Itoa(count)
	if offset != 0 {
		clause += " OFFSET " + strconv.Itoa(offset)
	}
	return clause, nil
}

// MutationLimit fails: LIMIT on UPDATE/DELETE needs SQLITE_ENABLE_UPDATE_DELETE_LIMIT,
// which standard builds leave out.
func (r *Renderer) MutationLimit(_ int) (string, error) {
	return "", render.NewUnsupportedFeatureError(r.Name(), "LIMIT on UPDATE/DELETE",
		"requires SQLite compiled with SQLITE_ENABLE_UPDATE_DELETE_LIMIT")
}

// Quote renders a value as a SQLite literal.
func (r *Renderer) Quote(v any) (string, error) {
	return quoting.Quote(v)
}

// Capabilities returns the SQL features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		JoinKinds: append(append([]types.JoinKind(nil), render.StandardJoins...), types.JoinNatural),
	}
}
