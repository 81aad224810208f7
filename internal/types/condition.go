package types

import "strings"

// LogicOperator represents how predicates are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// Predicate is a node of a WHERE or HAVING boolean tree.
// This is exported from the internal package so the root package and the
// renderers can share it, but external users cannot import this package.
type Predicate interface {
	String() string
	Clone() Predicate
	IsPredicate()
}

// Leaf is a pre-rendered condition. Its text is emitted verbatim.
type Leaf string

// String returns the condition text.
func (l Leaf) String() string { return string(l) }

// Clone returns the leaf itself; leaves are immutable.
func (l Leaf) Clone() Predicate { return l }

// Composite groups predicates under a single logic operator.
// Composites are mutated in place by Combine, so stores that share a tree
// must Clone it first.
type Composite struct {
	Logic    LogicOperator
	Children []Predicate
}

// NewComposite creates a composite with the given children.
func NewComposite(logic LogicOperator, children ...Predicate) *Composite {
	c := &Composite{Logic: logic}
	c.Add(children...)
	return c
}

// Add appends children. Composites with the same operator are flattened
// into the receiver instead of nested.
func (c *Composite) Add(children ...Predicate) *Composite {
	for _, child := range children {
		if child == nil {
			continue
		}
		if sub, ok := child.(*Composite); ok && sub.Logic == c.Logic {
			c.Add(sub.Children...)
			continue
		}
		c.Children = append(c.Children, child)
	}
	return c
}

// Len returns the number of direct children.
func (c *Composite) Len() int {
	return len(c.Children)
}

// String renders the composite as a parenthesized expression. Empty children
// are skipped and a composite with none renders as "".
func (c *Composite) String() string {
	parts := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		if s := child.String(); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " "+string(c.Logic)+" ") + ")"
}

// Clone returns a deep copy of the composite and all nested composites.
func (c *Composite) Clone() Predicate {
	out := &Composite{Logic: c.Logic, Children: make([]Predicate, len(c.Children))}
	for i, child := range c.Children {
		out.Children[i] = child.Clone()
	}
	return out
}

// Implement Predicate interface.
func (Leaf) IsPredicate()       {}
func (*Composite) IsPredicate() {}

// Combine merges parts into root under the given operator and returns the new root.
//
//   - nil root, one part: the part becomes the root.
//   - nil root, several parts: a new composite holds them.
//   - composite root with the same operator: its children are extended.
//   - anything else: the old root is nested as the first child of a new composite.
func Combine(root Predicate, logic LogicOperator, parts ...Predicate) Predicate {
	if len(parts) == 0 {
		return root
	}
	if root == nil {
		if len(parts) == 1 {
			return parts[0]
		}
		return NewComposite(logic, parts...)
	}
	if c, ok := root.(*Composite); ok && c.Logic == logic {
		return c.Add(parts...)
	}
	return NewComposite(logic, append([]Predicate{root}, parts...)...)
}
