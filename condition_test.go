package quill_test

import (
	"testing"

	"github.com/zoobzio/quill"
)

func TestComparisons(t *testing.T) {
	tests := []struct {
		name     string
		leaf     quill.Leaf
		expected string
	}{
		{"C", quill.C("a", quill.GE, "1"), "a >= 1"},
		{"Eq", quill.Eq("a", "?"), "a = ?"},
		{"Neq", quill.Neq("a", "?"), "a <> ?"},
		{"Lt", quill.Lt("a", "?"), "a < ?"},
		{"Lte", quill.Lte("a", "?"), "a <= ?"},
		{"Gt", quill.Gt("a", "?"), "a > ?"},
		{"Gte", quill.Gte("a", "?"), "a >= ?"},
		{"Like", quill.Like("name", ":dcValue1"), "name LIKE :dcValue1"},
		{"NotLike", quill.NotLike("name", "'%x'"), "name NOT LIKE '%x'"},
		{"In", quill.In("id", "1", "2", "3"), "id IN (1, 2, 3)"},
		{"NotIn", quill.NotIn("id", "?", "?"), "id NOT IN (?, ?)"},
		{"Null", quill.Null("deleted_at"), "deleted_at IS NULL"},
		{"NotNull", quill.NotNull("deleted_at"), "deleted_at IS NOT NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.leaf.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAndOr(t *testing.T) {
	p := quill.And("a = 1", quill.Or("b = 2", quill.Eq("c", "3")), nil)
	if got := p.String(); got != "(a = 1 AND (b = 2 OR c = 3))" {
		t.Errorf("Unexpected predicate: %q", got)
	}

	flat := quill.And(quill.And("a", "b"), "c")
	if got := flat.String(); got != "(a AND b AND c)" {
		t.Errorf("Expected nested AND to flatten, got %q", got)
	}
}

func TestOperatorConstants(t *testing.T) {
	if got := quill.C("id", quill.OpNotIn, "(1, 2)").String(); got != "id NOT IN (1, 2)" {
		t.Errorf("Expected NOT IN comparison, got %q", got)
	}
	if got := quill.C("name", quill.OpNotLike, "'a%'").String(); got != "name NOT LIKE 'a%'" {
		t.Errorf("Expected NOT LIKE comparison, got %q", got)
	}
}

func TestOr_SingleConditionIsParenthesized(t *testing.T) {
	sql, err := quill.New().From("users").Where(quill.Or("a = 1")).Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sql != "SELECT * FROM users WHERE (a = 1)" {
		t.Errorf("Expected single-child group in parentheses, got %q", sql)
	}
}

func TestTryAnd_Empty(t *testing.T) {
	if _, err := quill.TryAnd(); err == nil {
		t.Error("Expected error for empty AND")
	}
	if _, err := quill.TryOr(nil); err == nil {
		t.Error("Expected error for OR with only nil")
	}
	if _, err := quill.TryOr(3.5); err == nil {
		t.Error("Expected error for non-condition argument")
	}
}

func TestAnd_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic")
		}
	}()
	quill.Or()
}

func TestExpressions(t *testing.T) {
	tests := map[string]string{
		quill.Sum("total"):                  "SUM(total)",
		quill.Avg("total"):                  "AVG(total)",
		quill.Min("total"):                  "MIN(total)",
		quill.Max("total"):                  "MAX(total)",
		quill.Count(""):                     "COUNT(*)",
		quill.CountDistinct("user_id"):      "COUNT(DISTINCT user_id)",
		quill.Coalesce("nick", "name"):      "COALESCE(nick, name)",
		quill.As(quill.Sum("total"), "sum"): "SUM(total) AS sum",
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
