package quill_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/quill"
	"github.com/zoobzio/quill/mssql"
	"github.com/zoobzio/quill/postgres"
	"github.com/zoobzio/quill/sqlite"
	quilltest "github.com/zoobzio/quill/testing"
)

func TestLookupDialect(t *testing.T) {
	tests := map[string]string{
		"mysql":     "mysql",
		"MariaDB":   "mysql",
		"postgres":  "postgres",
		"pgx":       "postgres",
		"sqlite":    "sqlite",
		"sqlserver": "mssql",
		"mssql":     "mssql",
	}
	for name, want := range tests {
		d, err := quill.LookupDialect(name)
		if err != nil {
			t.Fatalf("LookupDialect(%q) error = %v", name, err)
		}
		if d.Name() != want {
			t.Errorf("LookupDialect(%q).Name() = %q, want %q", name, d.Name(), want)
		}
	}

	_, err := quill.LookupDialect("oracle")
	if !errors.Is(err, quill.ErrUnknownDialect) {
		t.Errorf("Expected ErrUnknownDialect, got %v", err)
	}
}

func TestWithDialect_Limits(t *testing.T) {
	tests := []struct {
		dialect  quill.Dialect
		expected string
	}{
		{postgres.New(), "SELECT * FROM users ORDER BY id LIMIT 10 OFFSET 20"},
		{sqlite.New(), "SELECT * FROM users ORDER BY id LIMIT 10 OFFSET 20"},
		{mssql.New(), "SELECT * FROM users ORDER BY id OFFSET 20 ROWS FETCH NEXT 10 ROWS ONLY"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			b := quill.New(quill.WithDialect(tt.dialect)).From("users").OrderBy("id").Limit(10).Offset(20)
			quilltest.AssertRender(t, tt.expected, b)
		})
	}
}

func TestWithDialect_MutationLimitUnsupported(t *testing.T) {
	_, err := quill.New(quill.WithDialect(postgres.New())).
		Update("users").Set("a", "1").Limit(1).Render()

	var ufErr quill.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("Expected UnsupportedFeatureError, got %v", err)
	}
}

func TestWithDialect_NilKeepsDefault(t *testing.T) {
	if got := quill.New(quill.WithDialect(nil)).Dialect().Name(); got != "mysql" {
		t.Errorf("Expected mysql default, got %q", got)
	}
}

func TestQuoteValue(t *testing.T) {
	b := quill.New()

	scalar, err := b.Quote("O'Hara")
	quilltest.AssertNoError(t, err)
	if scalar != "'O''Hara'" {
		t.Errorf("Unexpected scalar: %v", scalar)
	}

	m, err := b.Quote(map[string]any{"name": "a", "age": 5, "gone": nil})
	quilltest.AssertNoError(t, err)
	if !reflect.DeepEqual(m, map[string]string{"name": "'a'", "age": "5", "gone": "NULL"}) {
		t.Errorf("Unexpected map: %v", m)
	}

	s, err := quill.QuoteValue(postgres.New(), []any{true, 1.25})
	quilltest.AssertNoError(t, err)
	if !reflect.DeepEqual(s, []string{"TRUE", "1.25"}) {
		t.Errorf("Unexpected slice: %v", s)
	}

	_, err = b.Quote([]any{struct{}{}})
	quilltest.AssertErrorContains(t, err, "cannot quote")
}
