package mysql

import (
	"testing"
	"time"

	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/internal/types"
)

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.Name() != "mysql" {
		t.Errorf("Name() = %q, want %q", r.Name(), "mysql")
	}
}

func TestRender_SelectLimit(t *testing.T) {
	s := types.NewStore()
	s.AddSource(true, types.Source{Table: "users", Alias: "u"})
	s.SetLimit(&types.Limit{Count: 10, Offset: 30})

	sql, err := render.Statement(s, New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := "SELECT u.* FROM users u LIMIT 30,10"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestRender_UpdateLimit(t *testing.T) {
	s := types.NewStore()
	s.SetKind(types.KindUpdate)
	s.AddSource(false, types.Source{Table: "users", Alias: "u"})
	s.AddExprs(types.SlotSet, true, "pwd = ?")
	s.SetPredicate(types.SlotWhere, types.Leaf("id = ?"))
	s.SetLimit(&types.Limit{Count: 1})

	sql, err := render.Statement(s, New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := "UPDATE users u SET pwd = ? WHERE id = ? LIMIT 1"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestRender_AcceptsEveryJoinKind(t *testing.T) {
	caps := New().Capabilities()
	for _, kind := range []types.JoinKind{types.JoinLinear, types.JoinUnion, types.JoinNatural, types.JoinFullOuter} {
		if !caps.SupportsJoin(kind) {
			t.Errorf("Expected MySQL to accept %q", kind)
		}
	}
}

func TestQuote(t *testing.T) {
	r := New()
	tests := []struct {
		value    any
		expected string
	}{
		{nil, "NULL"},
		{true, "TRUE"},
		{"it's", "'it''s'"},
		{`C:\tmp`, `'C:\\tmp'`},
		{[]byte("hi"), "X'6869'"},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "'2024-01-02 03:04:05'"},
	}
	for _, tt := range tests {
		got, err := r.Quote(tt.value)
		if err != nil {
			t.Fatalf("Quote(%v) error = %v", tt.value, err)
		}
		if got != tt.expected {
			t.Errorf("Quote(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}
