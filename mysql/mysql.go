// Package mysql provides the MySQL/MariaDB dialect renderer for quill.
//
// MySQL is the reference dialect: SELECT limits render as LIMIT offset,count
// and UPDATE/DELETE accept a row count and multi-table targets.
package mysql

import (
	"strconv"

	"github.com/zoobzio/quill/internal/render"
)

var quoting = render.QuoteStyle{
	True:        "TRUE",
	False:       "FALSE",
	Backslashes: true,
	TimeLayout:  "2006-01-02 15:04:05.999999",
	Bytes:       render.HexBytes,
}

// Renderer implements the MySQL dialect.
type Renderer struct{}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "mysql".
func (r *Renderer) Name() string { return "mysql" }

// SelectLimit renders " LIMIT offset,count".
func (r *Renderer) SelectLimit(count, offset int) (string, error) {
	return " LIMIT " + strconv.Itoa(offset) + "," + strconv.Itoa(count), nil
}

// MutationLimit renders " LIMIT count".
func (r *Renderer) MutationLimit(count int) (string, error) {
	return " LIMIT " + strconv.Itoa(count), nil
}

// Quote renders a value as a MySQL literal. Backslashes are escaped since
// MySQL treats them as escape characters unless NO_BACKSLASH_ESCAPES is set.
func (r *Renderer) Quote(v any) (string, error) {
	return quoting.Quote(v)
}

// Capabilities returns the SQL features supported by MySQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		MutationJoins: true,
	}
}
