package quill

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/mssql"
	"github.com/zoobzio/quill/mysql"
	"github.com/zoobzio/quill/postgres"
	"github.com/zoobzio/quill/sqlite"
)

// Dialect defines the vendor-specific parts of rendering: SELECT and
// UPDATE/DELETE limits, supported joins and literal quoting.
type Dialect = render.Dialect

// Quoter renders a scalar value as a SQL literal. Every Dialect is a Quoter.
type Quoter interface {
	Quote(v any) (string, error)
}

var dialects = map[string]func() Dialect{
	"mysql":     func() Dialect { return mysql.New() },
	"mariadb":   func() Dialect { return mysql.New() },
	"postgres":  func() Dialect { return postgres.New() },
	"pgx":       func() Dialect { return postgres.New() },
	"sqlite":    func() Dialect { return sqlite.New() },
	"mssql":     func() Dialect { return mssql.New() },
	"sqlserver": func() Dialect { return mssql.New() },
}

// LookupDialect returns the dialect registered under name (case-insensitive).
// Driver names such as "pgx" and "sqlserver" are accepted as aliases.
func LookupDialect(name string) (Dialect, error) {
	if factory, ok := dialects[strings.ToLower(name)]; ok {
		return factory(), nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownDialect, name, strings.Join(DialectNames(), ", "))
}

// DialectNames lists the names accepted by LookupDialect.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// QuoteValue quotes v with q, keeping its shape: a scalar yields a string,
// a map[string]any yields a map[string]string and a []any yields a []string.
func QuoteValue(q Quoter, v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]string, len(x))
		for k, item := range x {
			quoted, err := q.Quote(item)
			if err != nil {
				return nil, fmt.Errorf("quote %q: %w", k, err)
			}
			out[k] = quoted
		}
		return out, nil
	case []any:
		out := make([]string, len(x))
		for i, item := range x {
			quoted, err := q.Quote(item)
			if err != nil {
				return nil, fmt.Errorf("quote [%d]: %w", i, err)
			}
			out[i] = quoted
		}
		return out, nil
	default:
		return q.Quote(v)
	}
}

// Quote quotes v with the builder's dialect, keeping its shape (see QuoteValue).
func (b *Builder) Quote(v any) (any, error) {
	return QuoteValue(b.dialect, v)
}
