package types

// StatementKind represents the type of statement being assembled.
type StatementKind string

const (
	KindSelect StatementKind = "SELECT"
	KindInsert StatementKind = "INSERT"
	KindUpdate StatementKind = "UPDATE"
	KindDelete StatementKind = "DELETE"
)

// Slot names a clause of the store.
type Slot string

const (
	SlotSelect  Slot = "select"
	SlotFrom    Slot = "from"
	SlotJoin    Slot = "join"
	SlotSet     Slot = "set"
	SlotWhere   Slot = "where"
	SlotGroupBy Slot = "groupBy"
	SlotHaving  Slot = "having"
	SlotOrderBy Slot = "orderBy"
	SlotValues  Slot = "values"
	SlotLimit   Slot = "limit"
)

// Rule describes how a slot accepts new content.
type Rule int

const (
	RuleScalar   Rule = iota // single value, replaced on every write
	RuleSequence             // ordered list, appended element by element
	RuleRecord               // ordered list of records, one record per append
	RuleKeyed                // keyed entries, extended per key
)

var slotRules = map[Slot]Rule{
	SlotSelect:  RuleSequence,
	SlotFrom:    RuleRecord,
	SlotJoin:    RuleKeyed,
	SlotSet:     RuleSequence,
	SlotWhere:   RuleScalar,
	SlotGroupBy: RuleSequence,
	SlotHaving:  RuleScalar,
	SlotOrderBy: RuleSequence,
	SlotValues:  RuleKeyed,
	SlotLimit:   RuleScalar,
}

// Slots lists every slot in clause order.
var Slots = []Slot{
	SlotSelect, SlotFrom, SlotJoin, SlotSet, SlotWhere,
	SlotGroupBy, SlotHaving, SlotOrderBy, SlotValues, SlotLimit,
}

// RuleOf returns the mutation rule of a slot. Unknown slots report false.
func RuleOf(slot Slot) (Rule, bool) {
	r, ok := slotRules[slot]
	return r, ok
}

// Store accumulates the clauses of one statement.
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
//
// Every mutating method marks the store dirty, which drops the cached render.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Store struct {
	kind        StatementKind
	projection  []string
	sources     []Source
	joins       map[string][]Join
	joinKeys    []string
	assignments []string
	where       Predicate
	having      Predicate
	groupBy     []string
	orderBy     []string
	values      []Value
	valueIndex  map[string]int
	limit       *Limit

	dirty bool
	cache string
}

// NewStore creates an empty SELECT store.
func NewStore() *Store {
	return &Store{kind: KindSelect, dirty: true}
}

func (s *Store) touch() {
	s.dirty = true
	s.cache = ""
}

// SetKind sets the statement kind.
func (s *Store) SetKind(kind StatementKind) {
	s.kind = kind
	s.touch()
}

// AddExprs writes expressions to a sequence slot (select, set, groupBy, orderBy).
// In replace mode the slot is overwritten; in append mode each expression is pushed.
func (s *Store) AddExprs(slot Slot, add bool, exprs ...string) {
	var dst *[]string
	switch slot {
	case SlotSelect:
		dst = &s.projection
	case SlotSet:
		dst = &s.assignments
	case SlotGroupBy:
		dst = &s.groupBy
	case SlotOrderBy:
		dst = &s.orderBy
	default:
		return
	}
	if add {
		*dst = append(*dst, exprs...)
	} else {
		*dst = append([]string(nil), exprs...)
	}
	s.touch()
}

// AddSource appends one source record, or replaces all sources with it.
func (s *Store) AddSource(add bool, src Source) {
	if add {
		s.sources = append(s.sources, src)
	} else {
		s.sources = []Source{src}
	}
	s.touch()
}

// AddJoin attaches joins to the reference from. In append mode the list under
// from is extended (or created); in replace mode the whole join map is replaced.
func (s *Store) AddJoin(add bool, from string, joins ...Join) {
	if !add {
		s.joins = nil
		s.joinKeys = nil
	}
	if s.joins == nil {
		s.joins = make(map[string][]Join)
	}
	if _, ok := s.joins[from]; !ok {
		s.joinKeys = append(s.joinKeys, from)
	}
	s.joins[from] = append(s.joins[from], joins...)
	s.touch()
}

// SetValues writes INSERT values. An existing column keeps its position and
// takes the new expression; new columns are appended.
func (s *Store) SetValues(add bool, values ...Value) {
	if !add {
		s.values = nil
		s.valueIndex = nil
	}
	if s.valueIndex == nil {
		s.valueIndex = make(map[string]int)
	}
	for _, v := range values {
		if i, ok := s.valueIndex[v.Column]; ok {
			s.values[i] = v
			continue
		}
		s.valueIndex[v.Column] = len(s.values)
		s.values = append(s.values, v)
	}
	s.touch()
}

// SetPredicate replaces the root of the where or having slot.
func (s *Store) SetPredicate(slot Slot, p Predicate) {
	switch slot {
	case SlotWhere:
		s.where = p
	case SlotHaving:
		s.having = p
	default:
		return
	}
	s.touch()
}

// SetLimit replaces the limit; nil removes it.
func (s *Store) SetLimit(l *Limit) {
	s.limit = l
	s.touch()
}

// Reset empties the named slots. The statement kind is left unchanged.
func (s *Store) Reset(slots ...Slot) {
	for _, slot := range slots {
		switch slot {
		case SlotSelect:
			s.projection = nil
		case SlotFrom:
			s.sources = nil
		case SlotJoin:
			s.joins = nil
			s.joinKeys = nil
		case SlotSet:
			s.assignments = nil
		case SlotWhere:
			s.where = nil
		case SlotGroupBy:
			s.groupBy = nil
		case SlotHaving:
			s.having = nil
		case SlotOrderBy:
			s.orderBy = nil
		case SlotValues:
			s.values = nil
			s.valueIndex = nil
		case SlotLimit:
			s.limit = nil
		}
	}
	s.touch()
}

// ResetAll empties every slot and returns the store to a SELECT.
func (s *Store) ResetAll() {
	s.Reset(Slots...)
	s.kind = KindSelect
}

// Clone returns a deep copy. Predicate trees are cloned node by node.
func (s *Store) Clone() *Store {
	out := &Store{
		kind:        s.kind,
		projection:  cloneStrings(s.projection),
		sources:     append([]Source(nil), s.sources...),
		joinKeys:    cloneStrings(s.joinKeys),
		assignments: cloneStrings(s.assignments),
		groupBy:     cloneStrings(s.groupBy),
		orderBy:     cloneStrings(s.orderBy),
		values:      append([]Value(nil), s.values...),
		dirty:       s.dirty,
		cache:       s.cache,
	}
	if s.joins != nil {
		out.joins = make(map[string][]Join, len(s.joins))
		for k, v := range s.joins {
			out.joins[k] = append([]Join(nil), v...)
		}
	}
	if s.valueIndex != nil {
		out.valueIndex = make(map[string]int, len(s.valueIndex))
		for k, v := range s.valueIndex {
			out.valueIndex[k] = v
		}
	}
	if s.where != nil {
		out.where = s.where.Clone()
	}
	if s.having != nil {
		out.having = s.having.Clone()
	}
	if s.limit != nil {
		l := *s.limit
		out.limit = &l
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// Cached returns the cached render and whether it is still valid.
func (s *Store) Cached() (string, bool) {
	if s.dirty {
		return "", false
	}
	return s.cache, true
}

// Cache stores a render result and marks the store clean.
func (s *Store) Cache(sql string) {
	s.cache = sql
	s.dirty = false
}

// Dirty reports whether the store changed since the last cached render.
func (s *Store) Dirty() bool { return s.dirty }

// Kind returns the statement kind.
func (s *Store) Kind() StatementKind { return s.kind }

// Projection returns the SELECT expressions.
func (s *Store) Projection() []string { return s.projection }

// Sources returns the declared sources.
func (s *Store) Sources() []Source { return s.sources }

// Joins returns the join map.
func (s *Store) Joins() map[string][]Join { return s.joins }

// JoinKeys returns the join map keys in the order they were first declared.
func (s *Store) JoinKeys() []string { return s.joinKeys }

// Assignments returns the UPDATE SET expressions.
func (s *Store) Assignments() []string { return s.assignments }

// Where returns the WHERE root, or nil.
func (s *Store) Where() Predicate { return s.where }

// Having returns the HAVING root, or nil.
func (s *Store) Having() Predicate { return s.having }

// GroupBy returns the GROUP BY expressions.
func (s *Store) GroupBy() []string { return s.groupBy }

// OrderBy returns the ORDER BY expressions.
func (s *Store) OrderBy() []string { return s.orderBy }

// Values returns the INSERT values in column order.
func (s *Store) Values() []Value { return s.values }

// Limit returns the limit, or nil when unset.
func (s *Store) Limit() *Limit { return s.limit }
