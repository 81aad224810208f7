// Package stmtfile reads YAML statement documents and replays them onto a
// quill builder.
package stmtfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zoobzio/quill"
	"gopkg.in/yaml.v3"
)

// Document describes one statement.
//
//	kind: select
//	select: [u.id, u.name]
//	from:
//	  - {table: users, alias: u}
//	joins:
//	  - {from: u, kind: left, table: posts, alias: p, on: p.user_id = u.id}
//	where:
//	  - u.active = 1
//	  - or: ["u.age > ?", "u.name = :name"]
//	params:
//	  positional: [30]
//	  named: {name: bob}
type Document struct {
	Kind  string `yaml:"kind"`
	Table string `yaml:"table"`
	Alias string `yaml:"alias"`

	Select []string `yaml:"select"`
	From   []Source `yaml:"from"`
	Joins  []Join   `yaml:"joins"`
	Set    Pairs    `yaml:"set"`
	Values Pairs    `yaml:"values"`

	Where    []Condition `yaml:"where"`
	AndWhere []Condition `yaml:"and_where"`
	OrWhere  []Condition `yaml:"or_where"`
	GroupBy  []string    `yaml:"group_by"`
	Having   []Condition `yaml:"having"`
	OrderBy  []string    `yaml:"order_by"`

	Limit  *int `yaml:"limit"`
	Offset *int `yaml:"offset"`

	Params Params `yaml:"params"`
}

// Source is a table with an optional alias. A plain string names the table.
type Source struct {
	Table string `yaml:"table"`
	Alias string `yaml:"alias"`
}

// UnmarshalYAML implements yaml.Unmarshaler for Source.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = Source{Table: node.Value}
		return nil
	case yaml.MappingNode:
		type plain Source
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*s = Source(p)
		return nil
	default:
		return fmt.Errorf("line %d: expected table name or mapping", node.Line)
	}
}

// Join attaches Table to the source or join referenced by From.
type Join struct {
	From  string `yaml:"from"`
	Kind  string `yaml:"kind"`
	Table string `yaml:"table"`
	Alias string `yaml:"alias"`
	On    string `yaml:"on"`
}

// Pair is one column and its expression.
type Pair struct {
	Column string
	Expr   string
}

// Pairs is a YAML mapping decoded in document order.
type Pairs []Pair

// UnmarshalYAML implements yaml.Unmarshaler for Pairs.
func (p *Pairs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of column to expression", node.Line)
	}
	out := make(Pairs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: expression for %q must be a scalar", val.Line, key.Value)
		}
		out = append(out, Pair{Column: key.Value, Expr: val.Value})
	}
	*p = out
	return nil
}

// Condition is a verbatim condition string or an {and: [...]} / {or: [...]} group.
type Condition struct {
	Expr string
	And  []Condition
	Or   []Condition
}

// UnmarshalYAML implements yaml.Unmarshaler for Condition.
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = Condition{Expr: node.Value}
		return nil
	case yaml.MappingNode:
		var group struct {
			And []Condition `yaml:"and"`
			Or  []Condition `yaml:"or"`
		}
		if err := node.Decode(&group); err != nil {
			return err
		}
		if (len(group.And) == 0) == (len(group.Or) == 0) {
			return fmt.Errorf("line %d: condition group needs exactly one non-empty and/or list", node.Line)
		}
		*c = Condition{And: group.And, Or: group.Or}
		return nil
	default:
		return fmt.Errorf("line %d: expected condition string or and/or group", node.Line)
	}
}

// Predicate converts the condition into a quill predicate.
func (c Condition) Predicate() (quill.Predicate, error) {
	switch {
	case len(c.And) > 0:
		return group(quill.TryAnd, c.And)
	case len(c.Or) > 0:
		return group(quill.TryOr, c.Or)
	default:
		return quill.Leaf(c.Expr), nil
	}
}

func group(fn func(...any) (quill.Predicate, error), conds []Condition) (quill.Predicate, error) {
	parts, err := predicates(conds)
	if err != nil {
		return nil, err
	}
	return fn(parts...)
}

func predicates(conds []Condition) ([]any, error) {
	out := make([]any, 0, len(conds))
	for _, c := range conds {
		p, err := c.Predicate()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Params binds values to the placeholders written in the document.
// Positional values are bound to positions 1..n.
type Params struct {
	Named      map[string]any `yaml:"named"`
	Positional []any          `yaml:"positional"`
}

// Load reads and parses a statement document. Unknown fields are rejected.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}
	return Parse(data)
}

// Parse parses a statement document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("invalid statement: %w", err)
	}
	return &doc, nil
}

func (d *Document) validate() error {
	kind := quill.KindSelect
	if d.Kind != "" {
		k, ok := quill.ParseKind(d.Kind)
		if !ok {
			return fmt.Errorf("unknown kind %q", d.Kind)
		}
		kind = k
	}

	switch kind {
	case quill.KindInsert, quill.KindUpdate, quill.KindDelete:
		if d.Table == "" {
			return fmt.Errorf("table is required for %s", kind)
		}
	case quill.KindSelect:
		if d.Table == "" && len(d.From) == 0 {
			return errors.New("table or from is required for SELECT")
		}
	}

	for i, j := range d.Joins {
		if j.From == "" || j.Table == "" {
			return fmt.Errorf("joins[%d]: from and table are required", i)
		}
		if j.Kind != "" && !joinKind(j.Kind).Valid() {
			return fmt.Errorf("joins[%d]: unknown join kind %q", i, j.Kind)
		}
	}
	return nil
}

func joinKind(name string) quill.JoinKind {
	if name == "" {
		return quill.JoinInner
	}
	return quill.JoinKind(strings.Join(strings.Fields(strings.ToLower(name)), " "))
}

// StatementKind returns the kind of the document, SELECT when unset.
func (d *Document) StatementKind() quill.StatementKind {
	if k, ok := quill.ParseKind(d.Kind); ok {
		return k
	}
	return quill.KindSelect
}

// Apply replays the document onto b. Builder errors surface from b.Render.
func (d *Document) Apply(b *quill.Builder) error {
	switch d.StatementKind() {
	case quill.KindInsert:
		b.Insert(d.Table)
	case quill.KindUpdate:
		b.Update(d.Table, d.Alias)
	case quill.KindDelete:
		b.Delete(d.Table, d.Alias)
	default:
		b.Select(d.Select...)
		if d.Table != "" {
			b.From(d.Table, d.Alias)
		}
	}

	for _, s := range d.From {
		b.From(s.Table, s.Alias)
	}
	for _, j := range d.Joins {
		b.AddJoin(joinKind(j.Kind), j.From, j.Table, j.Alias, j.On)
	}
	for _, p := range d.Set {
		b.Set(p.Column, p.Expr)
	}
	for _, p := range d.Values {
		b.SetValue(p.Column, p.Expr)
	}

	steps := []struct {
		name  string
		conds []Condition
		apply func(...any) *quill.Builder
	}{
		{"where", d.Where, b.Where},
		{"and_where", d.AndWhere, b.AndWhere},
		{"or_where", d.OrWhere, b.OrWhere},
		{"having", d.Having, b.Having},
	}
	for _, step := range steps {
		if len(step.conds) == 0 {
			continue
		}
		parts, err := predicates(step.conds)
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		step.apply(parts...)
	}

	if len(d.GroupBy) > 0 {
		b.GroupBy(d.GroupBy...)
	}
	for _, o := range d.OrderBy {
		b.AddOrderBy(o)
	}
	if d.Limit != nil {
		b.Limit(*d.Limit)
	}
	if d.Offset != nil {
		b.Offset(*d.Offset)
	}

	for name, v := range d.Params.Named {
		b.SetParameter(name, v)
	}
	for i, v := range d.Params.Positional {
		b.SetParameter(i+1, v)
	}
	return b.Err()
}
