package render

// Dialect renders the vendor-specific parts of a statement.
//
// SELECT and UPDATE/DELETE limits are separate hooks: a SELECT limit carries an
// offset while a mutation limit is a bare row count, and many engines support
// only the former.
type Dialect interface {
	// Name returns the dialect name used in error messages.
	Name() string

	// Capabilities returns the features the dialect supports.
	Capabilities() Capabilities

	// SelectLimit renders the limit clause of a SELECT, including its leading space.
	SelectLimit(count, offset int) (string, error)

	// MutationLimit renders the limit clause of an UPDATE or DELETE, including its
	// leading space.
	MutationLimit(count int) (string, error)

	// Quote renders a scalar value as a SQL literal.
	Quote(v any) (string, error)
}
