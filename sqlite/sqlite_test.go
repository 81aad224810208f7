package sqlite

import (
	"errors"
	"testing"

	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/internal/types"
)

func TestNew(t *testing.T) {
	if New() == nil {
		t.Fatal("New() returned nil")
	}
}

func TestRender_SelectWithOffset(t *testing.T) {
	s := types.NewStore()
	s.AddSource(true, types.Source{Table: "users"})
	s.AddExprs(types.SlotOrderBy, true, "id")
	s.SetLimit(&types.Limit{Count: 5, Offset: 15})

	sql, err := render.Statement(s, New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := "SELECT * FROM users ORDER BY id LIMIT 5 OFFSET 15"
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestRender_RejectsMutationLimit(t *testing.T) {
	s := types.NewStore()
	s.SetKind(types.KindUpdate)
	s.AddSource(false, types.Source{Table: "users"})
	s.AddExprs(types.SlotSet, true, "a = 1")
	s.SetLimit(&types.Limit{Count: 1})

	if _, err := render.Statement(s, New()); !errors.Is(err, render.ErrUnsupportedFeature) {
		t.Errorf("Expected unsupported feature error, got %v", err)
	}
}

func TestQuote_Booleans(t *testing.T) {
	r := New()
	if got, _ := r.Quote(true); got != "1" {
		t.Errorf("Quote(true) = %q, want 1", got)
	}
	if got, _ := r.Quote(false); got != "0" {
		t.Errorf("Quote(false) = %q, want 0", got)
	}
}
