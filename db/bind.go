package db

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/zoobzio/quill"
)

// ErrMissingParameter is returned when a placeholder has no bound value.
var ErrMissingParameter = errors.New("missing parameter")

// Bind rewrites the placeholders of a rendered statement into the bindvar
// style of bindType (see sqlx.BindType) and returns the driver arguments.
//
// Each "?" consumes the next positional value in ascending key order and each
// ":name" looks up its named value. Quoted literals and identifiers are left
// alone, as are "::" casts. A backslash escapes the next character inside a
// literal only when backslashes is set, as for MySQL.
func Bind(query string, params *quill.ParameterSet, bindType int, backslashes bool) (string, []any, error) {
	var (
		sb        strings.Builder
		args      []any
		positions = params.Positions()
		next      int
	)
	sb.Grow(len(query))

	placeholder := func() {
		n := len(args)
		switch bindType {
		case sqlx.DOLLAR:
			sb.WriteString("$" + strconv.Itoa(n))
		case sqlx.AT:
			sb.WriteString("@p" + strconv.Itoa(n))
		case sqlx.NAMED:
			sb.WriteString(":arg" + strconv.Itoa(n))
		default:
			sb.WriteByte('?')
		}
	}

	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end := skipQuoted(query, i, backslashes)
			sb.WriteString(query[i:end])
			i = end - 1

		case c == '?':
			if next >= len(positions) {
				return "", nil, fmt.Errorf("%w: positional placeholder %d", ErrMissingParameter, next+1)
			}
			v, _ := params.Positional(positions[next])
			next++
			args = append(args, v)
			placeholder()

		case c == ':' && i+1 < len(query) && query[i+1] == ':':
			sb.WriteString("::")
			i++

		case c == ':' && i+1 < len(query) && isIdentStart(query[i+1]):
			end := i + 1
			for end < len(query) && isIdent(query[end]) {
				end++
			}
			name := query[i+1 : end]
			v, ok := params.Named(name)
			if !ok {
				return "", nil, fmt.Errorf("%w: :%s", ErrMissingParameter, name)
			}
			args = append(args, v)
			placeholder()
			i = end - 1

		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), args, nil
}

// BackslashEscapes reports whether the driver's server treats a backslash in
// a string literal as an escape character.
func BackslashEscapes(driverName string) bool {
	switch driverName {
	case "mysql", "nrmysql":
		return true
	}
	return false
}

// skipQuoted returns the index just past the quoted section starting at i.
// Doubled quotes stay inside the section, and so do backslash escapes when
// backslashes is set.
func skipQuoted(query string, i int, backslashes bool) int {
	q := query[i]
	for j := i + 1; j < len(query); j++ {
		switch query[j] {
		case '\\':
			if backslashes && q != '`' {
				j++
			}
		case q:
			if j+1 < len(query) && query[j+1] == q {
				j++
				continue
			}
			return j + 1
		}
	}
	return len(query)
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
