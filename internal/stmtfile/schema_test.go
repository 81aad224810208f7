package stmtfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/quill"
)

func TestLoadSchema(t *testing.T) {
	schema, err := LoadSchema(filepath.Join("testdata", "schema.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"orders", "users"}, schema.Tables())
	assert.True(t, schema.HasColumn("users", "email"))
	assert.False(t, schema.HasColumn("users", "total"))
	assert.NotNil(t, schema.Project())
}

func TestLoadSchema_RejectsUnknownInsertColumn(t *testing.T) {
	schema, err := LoadSchema(filepath.Join("testdata", "schema.yaml"))
	require.NoError(t, err)

	d, err := Parse([]byte("kind: insert\ntable: users\nvalues:\n  nickname: \"'bo'\"\n"))
	require.NoError(t, err)

	b := quill.New(quill.WithSchema(schema))
	require.NoError(t, d.Apply(b))
	_, err = b.Render()
	assert.ErrorIs(t, err, quill.ErrUnknownColumn)
}

func TestLoadSchema_Errors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: x\n"), 0o644))
	_, err := LoadSchema(empty)
	assert.ErrorContains(t, err, "no tables")

	_, err = LoadSchema(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read schema file")
}
