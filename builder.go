package quill

import (
	"fmt"

	"github.com/zoobzio/quill/internal/types"
	"github.com/zoobzio/quill/mysql"
)

// Builder provides a fluent API for assembling one statement at a time.
//
// A Builder is not safe for concurrent use. Misuse such as an invalid join kind
// or a negative limit is latched and returned by Render.
type Builder struct {
	store   *types.Store
	dialect Dialect
	schema  *Schema
	params  *ParameterSet
	counter int
	err     error
}

// Option configures a Builder.
type Option func(*Builder)

// WithDialect selects the dialect used by Render. The default is MySQL.
func WithDialect(d Dialect) Option {
	return func(b *Builder) {
		if d != nil {
			b.dialect = d
		}
	}
}

// WithSchema makes Render reject tables and INSERT columns missing from s.
func WithSchema(s *Schema) Option {
	return func(b *Builder) {
		b.schema = s
	}
}

// New creates an empty builder. Until a kind is chosen it renders a SELECT.
func New(opts ...Option) *Builder {
	b := &Builder{
		store:   types.NewStore(),
		dialect: mysql.New(),
		params:  NewParameterSet(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Err returns the latched builder error, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(format string, args ...any) *Builder {
	if b.err == nil {
		b.err = fmt.Errorf(format, args...)
	}
	return b
}

// Dialect returns the dialect used by Render.
func (b *Builder) Dialect() Dialect {
	return b.dialect
}

// Select makes the statement a SELECT. Expressions, when given, replace the
// projection; without them the projection defaults to the first source's columns.
func (b *Builder) Select(exprs ...string) *Builder {
	b.store.SetKind(types.KindSelect)
	if len(exprs) > 0 {
		b.store.AddExprs(types.SlotSelect, false, exprs...)
	}
	return b
}

// AddSelect appends expressions to the projection.
func (b *Builder) AddSelect(exprs ...string) *Builder {
	b.store.AddExprs(types.SlotSelect, true, exprs...)
	return b
}

// Insert makes the statement an INSERT into table.
func (b *Builder) Insert(table string) *Builder {
	b.store.SetKind(types.KindInsert)
	b.store.AddSource(false, types.Source{Table: table})
	return b
}

// Update makes the statement an UPDATE of table, optionally aliased.
func (b *Builder) Update(table string, alias ...string) *Builder {
	b.store.SetKind(types.KindUpdate)
	b.store.AddSource(false, source(table, alias))
	return b
}

// Delete makes the statement a DELETE from table, optionally aliased.
func (b *Builder) Delete(table string, alias ...string) *Builder {
	b.store.SetKind(types.KindDelete)
	b.store.AddSource(false, source(table, alias))
	return b
}

func source(table string, alias []string) types.Source {
	src := types.Source{Table: table}
	if len(alias) > 0 {
		src.Alias = alias[0]
	}
	return src
}

// From appends a source table, optionally aliased. Several sources render
// comma-separated.
func (b *Builder) From(table string, alias ...string) *Builder {
	b.store.AddSource(true, source(table, alias))
	return b
}

// Join is an alias for InnerJoin.
func (b *Builder) Join(from, table, alias, condition string) *Builder {
	return b.AddJoin(types.JoinInner, from, table, alias, condition)
}

// InnerJoin joins table onto the source or join referenced by from.
func (b *Builder) InnerJoin(from, table, alias, condition string) *Builder {
	return b.AddJoin(types.JoinInner, from, table, alias, condition)
}

// LeftJoin creates a LEFT JOIN.
func (b *Builder) LeftJoin(from, table, alias, condition string) *Builder {
	return b.AddJoin(types.JoinLeft, from, table, alias, condition)
}

// RightJoin creates a RIGHT JOIN.
func (b *Builder) RightJoin(from, table, alias, condition string) *Builder {
	return b.AddJoin(types.JoinRight, from, table, alias, condition)
}

// FullJoin creates a FULL JOIN.
func (b *Builder) FullJoin(from, table, alias, condition string) *Builder {
	return b.AddJoin(types.JoinFull, from, table, alias, condition)
}

// CrossJoin creates a CROSS JOIN, which has no condition.
func (b *Builder) CrossJoin(from, table, alias string) *Builder {
	return b.AddJoin(types.JoinCross, from, table, alias, "")
}

// NaturalJoin creates a NATURAL JOIN, which has no condition.
func (b *Builder) NaturalJoin(from, table, alias string) *Builder {
	return b.AddJoin(types.JoinNatural, from, table, alias, "")
}

// AddJoin attaches a join of any kind to the reference from. The reference is
// checked at render time, so it may name a source declared later.
func (b *Builder) AddJoin(kind JoinKind, from, table, alias, condition string) *Builder {
	if !kind.Valid() {
		return b.fail("unknown join kind %q", kind)
	}
	b.store.AddJoin(true, from, types.Join{
		Kind:      kind,
		Table:     table,
		Alias:     alias,
		Condition: condition,
	})
	return b
}

// Set appends the assignment "column = value" to an UPDATE.
func (b *Builder) Set(column, value string) *Builder {
	b.store.AddExprs(types.SlotSet, true, column+" = "+value)
	return b
}

// Where replaces the WHERE tree. One condition becomes the root, several are
// ANDed and none clears the clause. Conditions are strings or Predicates.
func (b *Builder) Where(conds ...any) *Builder {
	return b.setPredicate(types.SlotWhere, conds)
}

// AndWhere combines conditions into the WHERE tree with AND.
func (b *Builder) AndWhere(conds ...any) *Builder {
	return b.combine(types.SlotWhere, types.AND, conds)
}

// OrWhere combines conditions into the WHERE tree with OR.
func (b *Builder) OrWhere(conds ...any) *Builder {
	return b.combine(types.SlotWhere, types.OR, conds)
}

// Having replaces the HAVING tree (see Where).
func (b *Builder) Having(conds ...any) *Builder {
	return b.setPredicate(types.SlotHaving, conds)
}

// AndHaving combines conditions into the HAVING tree with AND.
func (b *Builder) AndHaving(conds ...any) *Builder {
	return b.combine(types.SlotHaving, types.AND, conds)
}

// OrHaving combines conditions into the HAVING tree with OR.
func (b *Builder) OrHaving(conds ...any) *Builder {
	return b.combine(types.SlotHaving, types.OR, conds)
}

func (b *Builder) setPredicate(slot types.Slot, conds []any) *Builder {
	parts, err := predicates(conds)
	if err != nil {
		return b.fail("%s: %w", slot, err)
	}
	var root types.Predicate
	switch len(parts) {
	case 0:
	case 1:
		root = parts[0]
	default:
		root = types.NewComposite(types.AND, parts...)
	}
	b.store.SetPredicate(slot, root)
	return b
}

func (b *Builder) combine(slot types.Slot, logic types.LogicOperator, conds []any) *Builder {
	parts, err := predicates(conds)
	if err != nil {
		return b.fail("%s: %w", slot, err)
	}
	current := b.store.Where()
	if slot == types.SlotHaving {
		current = b.store.Having()
	}
	b.store.SetPredicate(slot, types.Combine(current, logic, parts...))
	return b
}

// GroupBy replaces the GROUP BY expressions.
func (b *Builder) GroupBy(exprs ...string) *Builder {
	b.store.AddExprs(types.SlotGroupBy, false, exprs...)
	return b
}

// AddGroupBy appends GROUP BY expressions.
func (b *Builder) AddGroupBy(exprs ...string) *Builder {
	b.store.AddExprs(types.SlotGroupBy, true, exprs...)
	return b
}

// OrderBy replaces the ORDER BY list with sort, followed by order (ASC/DESC)
// when given.
func (b *Builder) OrderBy(sort string, order ...string) *Builder {
	b.store.AddExprs(types.SlotOrderBy, false, orderExpr(sort, order))
	return b
}

// AddOrderBy appends an ORDER BY expression.
func (b *Builder) AddOrderBy(sort string, order ...string) *Builder {
	b.store.AddExprs(types.SlotOrderBy, true, orderExpr(sort, order))
	return b
}

func orderExpr(sort string, order []string) string {
	if len(order) > 0 && order[0] != "" {
		return sort + " " + order[0]
	}
	return sort
}

// Values replaces the INSERT values. Columns render in the given order.
func (b *Builder) Values(values ...Value) *Builder {
	b.store.SetValues(false, values...)
	return b
}

// SetValue sets one INSERT value. An existing column keeps its position.
func (b *Builder) SetValue(column, expr string) *Builder {
	b.store.SetValues(true, types.Value{Column: column, Expr: expr})
	return b
}

// Limit sets the maximum number of rows. Zero removes the limit from the
// rendered statement.
func (b *Builder) Limit(count int) *Builder {
	if count < 0 {
		return b.fail("limit must be non-negative, got %d", count)
	}
	l := b.limit()
	l.Count = count
	b.store.SetLimit(&l)
	return b
}

// Offset sets the number of rows skipped by a SELECT.
func (b *Builder) Offset(offset int) *Builder {
	if offset < 0 {
		return b.fail("offset must be non-negative, got %d", offset)
	}
	l := b.limit()
	l.Offset = offset
	b.store.SetLimit(&l)
	return b
}

func (b *Builder) limit() types.Limit {
	if l := b.store.Limit(); l != nil {
		return *l
	}
	return types.Limit{}
}

// Reset empties the named clauses. Parameters and the placeholder counter are
// kept.
func (b *Builder) Reset(slots ...Slot) *Builder {
	b.store.Reset(slots...)
	return b
}

// ResetAll empties every clause, the parameters and the placeholder counter,
// and clears any latched error. The builder then renders a SELECT again.
func (b *Builder) ResetAll() *Builder {
	b.store.ResetAll()
	b.params = NewParameterSet()
	b.counter = 0
	b.err = nil
	return b
}

// Clone returns an independent copy of the builder, including its predicate
// trees and parameters.
func (b *Builder) Clone() *Builder {
	return &Builder{
		store:   b.store.Clone(),
		dialect: b.dialect,
		schema:  b.schema,
		params:  b.params.Clone(),
		counter: b.counter,
		err:     b.err,
	}
}

// Kind returns the statement kind.
func (b *Builder) Kind() StatementKind {
	return b.store.Kind()
}

// Projection returns the SELECT expressions.
func (b *Builder) Projection() []string {
	return append([]string(nil), b.store.Projection()...)
}

// Sources returns the declared sources.
func (b *Builder) Sources() []Source {
	return append([]Source(nil), b.store.Sources()...)
}

// Joins returns the joins keyed by the reference they attach to.
func (b *Builder) Joins() map[string][]Join {
	out := make(map[string][]Join, len(b.store.Joins()))
	for k, v := range b.store.Joins() {
		out[k] = append([]Join(nil), v...)
	}
	return out
}

// Assignments returns the UPDATE SET expressions.
func (b *Builder) Assignments() []string {
	return append([]string(nil), b.store.Assignments()...)
}

// WherePredicate returns a copy of the WHERE tree, or nil.
func (b *Builder) WherePredicate() Predicate {
	return clonePredicate(b.store.Where())
}

// HavingPredicate returns a copy of the HAVING tree, or nil.
func (b *Builder) HavingPredicate() Predicate {
	return clonePredicate(b.store.Having())
}

func clonePredicate(p types.Predicate) Predicate {
	if p == nil {
		return nil
	}
	return p.Clone()
}

// Grouping returns the GROUP BY expressions.
func (b *Builder) Grouping() []string {
	return append([]string(nil), b.store.GroupBy()...)
}

// Ordering returns the ORDER BY expressions.
func (b *Builder) Ordering() []string {
	return append([]string(nil), b.store.OrderBy()...)
}

// InsertValues returns the INSERT values in column order.
func (b *Builder) InsertValues() []Value {
	return append([]Value(nil), b.store.Values()...)
}

// LimitClause returns the limit, or nil when none was set.
func (b *Builder) LimitClause() *Limit {
	l := b.store.Limit()
	if l == nil {
		return nil
	}
	out := *l
	return &out
}
