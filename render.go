package quill

import "github.com/zoobzio/quill/internal/render"

// Render returns the SQL for the current clauses. The result is cached and
// returned unchanged until the next mutating call.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if sql, ok := b.store.Cached(); ok {
		return sql, nil
	}
	if b.schema != nil {
		if err := b.schema.validate(b.store); err != nil {
			return "", err
		}
	}
	sql, err := render.Statement(b.store, b.dialect)
	if err != nil {
		return "", err
	}
	b.store.Cache(sql)
	return sql, nil
}

// MustRender renders the statement and panics on error.
func (b *Builder) MustRender() string {
	sql, err := b.Render()
	if err != nil {
		panic(err)
	}
	return sql
}

// String renders the statement, returning an empty string on error.
func (b *Builder) String() string {
	sql, err := b.Render()
	if err != nil {
		return ""
	}
	return sql
}
