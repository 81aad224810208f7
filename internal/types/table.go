package types

import "strings"

// Source is a table the statement reads from or writes to.
// This is exported from the internal package so renderers can use it,
// but external users cannot import this package.
type Source struct {
	Table string
	Alias string
}

// Ref returns the name joins use to reference the source: its alias, or the
// table name when no alias is set.
func (s Source) Ref() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Table
}

// SQL renders the source as "table[ alias]".
func (s Source) SQL() string {
	if s.Alias != "" {
		return s.Table + " " + s.Alias
	}
	return s.Table
}

// JoinKind represents the type of SQL join.
type JoinKind string

const (
	JoinInner       JoinKind = "inner"
	JoinLeft        JoinKind = "left"
	JoinLeftOuter   JoinKind = "left outer"
	JoinRight       JoinKind = "right"
	JoinRightOuter  JoinKind = "right outer"
	JoinFull        JoinKind = "full"
	JoinFullOuter   JoinKind = "full outer"
	JoinCross       JoinKind = "cross"
	JoinLinear      JoinKind = "linear"
	JoinLeftLinear  JoinKind = "left linear"
	JoinRightLinear JoinKind = "right linear"
	JoinNatural     JoinKind = "natural"
	JoinOuter       JoinKind = "outer"
	JoinUnion       JoinKind = "union"
)

var joinKinds = map[JoinKind]bool{
	JoinInner: true, JoinLeft: true, JoinLeftOuter: true,
	JoinRight: true, JoinRightOuter: true, JoinFull: true,
	JoinFullOuter: true, JoinCross: true, JoinLinear: true,
	JoinLeftLinear: true, JoinRightLinear: true, JoinNatural: true,
	JoinOuter: true, JoinUnion: true,
}

// Valid reports whether k is a known join kind.
func (k JoinKind) Valid() bool {
	return joinKinds[k]
}

// Keyword returns the SQL keyword for the join, e.g. "LEFT OUTER JOIN".
func (k JoinKind) Keyword() string {
	return strings.ToUpper(string(k)) + " JOIN"
}

// Join describes a table joined onto a previously declared source or join.
type Join struct {
	Kind      JoinKind
	Table     string
	Alias     string
	Condition string
}

// Ref returns the alias of the join, or its table name when no alias is set.
func (j Join) Ref() string {
	if j.Alias != "" {
		return j.Alias
	}
	return j.Table
}

// SQL renders the join as " KIND JOIN table[ alias][ ON condition]".
func (j Join) SQL() string {
	var sql strings.Builder
	sql.WriteString(" ")
	sql.WriteString(j.Kind.Keyword())
	sql.WriteString(" ")
	sql.WriteString(j.Table)
	if j.Alias != "" {
		sql.WriteString(" ")
		sql.WriteString(j.Alias)
	}
	// CROSS and NATURAL joins have no ON clause
	if j.Condition != "" {
		sql.WriteString(" ON ")
		sql.WriteString(j.Condition)
	}
	return sql.String()
}

// Value is one column of an INSERT row.
type Value struct {
	Column string
	Expr   string
}

// Limit holds the row count and offset of a statement.
type Limit struct {
	Count  int
	Offset int
}
