package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/quill/internal/types"
)

// Statement renders the store with the given dialect. It never mutates the store.
func Statement(s *types.Store, d Dialect) (string, error) {
	switch s.Kind() {
	case types.KindSelect:
		return renderSelect(s, d)
	case types.KindInsert:
		return renderInsert(s)
	case types.KindUpdate:
		return renderUpdate(s, d)
	case types.KindDelete:
		return renderDelete(s, d)
	default:
		return "", fmt.Errorf("unsupported statement kind: %s", s.Kind())
	}
}

func checkJoins(s *types.Store, d Dialect) error {
	caps := d.Capabilities()
	for _, key := range s.JoinKeys() {
		for _, j := range s.Joins()[key] {
			if !caps.SupportsJoin(j.Kind) {
				return NewUnsupportedFeatureError(d.Name(), j.Kind.Keyword())
			}
		}
	}
	return nil
}

func writePredicate(sb *strings.Builder, keyword string, p types.Predicate) {
	if p == nil {
		return
	}
	if cond := p.String(); cond != "" {
		sb.WriteString(" ")
		sb.WriteString(keyword)
		sb.WriteString(" ")
		sb.WriteString(cond)
	}
}

func writeList(sb *strings.Builder, keyword string, exprs []string) {
	if len(exprs) == 0 {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(keyword)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(exprs, ", "))
}

func renderSelect(s *types.Store, d Dialect) (string, error) {
	sources := s.Sources()
	if len(sources) == 0 {
		return "", NewMalformedStatementError(types.KindSelect, "no source table")
	}
	if err := checkJoins(s, d); err != nil {
		return "", err
	}
	refs, err := ResolveSources(sources, s.Joins(), s.JoinKeys())
	if err != nil {
		return "", err
	}

	projection := s.Projection()
	if len(projection) == 0 {
		if sources[0].Alias != "" {
			projection = []string{sources[0].Alias + ".*"}
		} else {
			projection = []string{"*"}
		}
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(strings.Join(projection, ", "))
	sql.WriteString(" FROM ")
	sql.WriteString(strings.Join(refs, ", "))
	writePredicate(&sql, "WHERE", s.Where())
	writeList(&sql, "GROUP BY", s.GroupBy())
	writePredicate(&sql, "HAVING", s.Having())
	writeList(&sql, "ORDER BY", s.OrderBy())

	if l := s.Limit(); l != nil && l.Count != 0 {
		if d.Capabilities().OffsetRequiresOrder && len(s.OrderBy()) == 0 {
			return "", NewUnsupportedFeatureError(d.Name(), "LIMIT without ORDER BY",
				"add an ORDER BY clause to page results")
		}
		clause, err := d.SelectLimit(l.Count, l.Offset)
		if err != nil {
			return "", err
		}
		sql.WriteString(clause)
	}

	return sql.String(), nil
}

func renderInsert(s *types.Store) (string, error) {
	sources := s.Sources()
	if len(sources) != 1 {
		return "", NewMalformedStatementError(types.KindInsert,
			"requires exactly one target table, got "+strconv.Itoa(len(sources)))
	}
	values := s.Values()
	if len(values) == 0 {
		return "", NewMalformedStatementError(types.KindInsert, "no values")
	}

	cols := make([]string, len(values))
	exprs := make([]string, len(values))
	for i, v := range values {
		cols[i] = v.Column
		exprs[i] = v.Expr
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(sources[0].Table)
	sql.WriteString(" (")
	sql.WriteString(strings.Join(cols, ", "))
	sql.WriteString(") VALUES (")
	sql.WriteString(strings.Join(exprs, ", "))
	sql.WriteString(")")
	return sql.String(), nil
}

func hasJoins(s *types.Store) bool {
	for _, joins := range s.Joins() {
		if len(joins) > 0 {
			return true
		}
	}
	return false
}

// mutationTarget resolves the target of an UPDATE or DELETE.
func mutationTarget(s *types.Store, d Dialect) (string, error) {
	kind := s.Kind()
	sources := s.Sources()
	if len(sources) == 0 {
		return "", NewMalformedStatementError(kind, "no target table")
	}
	if (len(sources) > 1 || hasJoins(s)) && !d.Capabilities().MutationJoins {
		return "", NewUnsupportedFeatureError(d.Name(), "multi-table "+string(kind))
	}
	if err := checkJoins(s, d); err != nil {
		return "", err
	}
	refs, err := ResolveSources(sources, s.Joins(), s.JoinKeys())
	if err != nil {
		return "", err
	}
	return strings.Join(refs, ", "), nil
}

func writeMutationLimit(sb *strings.Builder, s *types.Store, d Dialect) error {
	l := s.Limit()
	if l == nil || l.Count == 0 {
		return nil
	}
	clause, err := d.MutationLimit(l.Count)
	if err != nil {
		return err
	}
	sb.WriteString(clause)
	return nil
}

func renderUpdate(s *types.Store, d Dialect) (string, error) {
	target, err := mutationTarget(s, d)
	if err != nil {
		return "", err
	}
	if len(s.Assignments()) == 0 {
		return "", NewMalformedStatementError(types.KindUpdate, "no assignments")
	}

	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(target)
	sql.WriteString(" SET ")
	sql.WriteString(strings.Join(s.Assignments(), ", "))
	writePredicate(&sql, "WHERE", s.Where())
	if err := writeMutationLimit(&sql, s, d); err != nil {
		return "", err
	}
	return sql.String(), nil
}

func renderDelete(s *types.Store, d Dialect) (string, error) {
	target, err := mutationTarget(s, d)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("DELETE ")
	// Multi-table deletes name the rows to remove before FROM.
	if sources := s.Sources(); len(sources) > 1 || hasJoins(s) {
		sql.WriteString(sources[0].Ref())
		sql.WriteString(" ")
	}
	sql.WriteString("FROM ")
	sql.WriteString(target)
	writePredicate(&sql, "WHERE", s.Where())
	if err := writeMutationLimit(&sql, s, d); err != nil {
		return "", err
	}
	return sql.String(), nil
}
