package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/zoobzio/quill"
	"github.com/zoobzio/quill/db"
	quilltest "github.com/zoobzio/quill/testing"
)

// suite runs the statement scenarios shared by every database. The users and
// posts tables must exist and be empty.
type suite struct {
	ex      *db.Executor
	dialect quill.Dialect
	schema  *quill.Schema

	// lastInsertID is false for drivers that cannot report generated ids.
	lastInsertID bool
}

func newSuite(t *testing.T, ex *db.Executor, dialect quill.Dialect, lastInsertID bool) *suite {
	t.Helper()
	return &suite{
		ex:           ex,
		dialect:      dialect,
		schema:       quilltest.TestSchema(t),
		lastInsertID: lastInsertID,
	}
}

func (s *suite) builder() *quill.Builder {
	return quill.New(quill.WithDialect(s.dialect), quill.WithSchema(s.schema))
}

func (s *suite) execute(t *testing.T, b *quill.Builder) *quill.Result {
	t.Helper()
	sql, err := b.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	res, err := b.Execute(context.Background(), s.ex)
	if err != nil {
		t.Fatalf("Execute failed: %v\nSQL: %s", err, sql)
	}
	return res
}

// column returns one column of the result rows, formatted with fmt.Sprint.
func column(rows []map[string]any, name string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = fmt.Sprint(row[name])
	}
	return out
}

func assertColumn(t *testing.T, res *quill.Result, name string, want ...string) {
	t.Helper()
	got := column(res.Rows, name)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Expected %s %v, got %v\nSQL: %s", name, want, got, res.SQL)
	}
}

func (s *suite) seed(t *testing.T) {
	t.Helper()

	users := []struct {
		name   string
		age    int
		active bool
	}{
		{"alice", 30, true},
		{"bob", 25, true},
		{"carol", 35, false},
	}
	for i, u := range users {
		b := s.builder().Insert("users")
		b.SetValue("username", b.CreateNamedParameter(u.name))
		b.SetValue("email", b.CreateNamedParameter(u.name+"@example.com"))
		b.SetValue("age", b.CreateNamedParameter(u.age))
		b.SetValue("active", b.CreatePositionalParameter(u.active))

		res := s.execute(t, b)
		if s.lastInsertID && res.LastInsertID != int64(i+1) {
			t.Errorf("Expected last insert id %d, got %d", i+1, res.LastInsertID)
		}
	}

	posts := []struct {
		userID int
		title  string
		views  int
	}{
		{1, "hello", 10},
		{1, "again", 5},
		{2, "bob post", 7},
	}
	for _, p := range posts {
		b := s.builder().Insert("posts")
		b.Values(
			quill.V("user_id", b.CreatePositionalParameter(p.userID)),
			quill.V("title", b.CreatePositionalParameter(p.title)),
			quill.V("views", b.CreatePositionalParameter(p.views)),
		)
		s.execute(t, b)
	}
}

func (s *suite) run(t *testing.T) {
	s.seed(t)

	t.Run("where and order", func(t *testing.T) {
		b := s.builder().Select("username").From("users")
		b.Where(quill.Eq("active", b.CreateNamedParameter(true))).OrderBy("username")
		assertColumn(t, s.execute(t, b), "username", "alice", "bob")
	})

	t.Run("limit and offset", func(t *testing.T) {
		b := s.builder().Select("username").From("users").OrderBy("age").Limit(2).Offset(1)
		assertColumn(t, s.execute(t, b), "username", "alice", "carol")
	})

	t.Run("or where", func(t *testing.T) {
		b := s.builder().Select("username").From("users")
		b.Where(quill.Eq("username", b.CreateNamedParameter("alice")))
		b.OrWhere(quill.Gt("age", b.CreatePositionalParameter(33)))
		b.OrderBy("username")
		assertColumn(t, s.execute(t, b), "username", "alice", "carol")
	})

	t.Run("in", func(t *testing.T) {
		b := s.builder().Select("username").From("users")
		b.Where(quill.In("username", b.CreateNamedParameter("bob"), b.CreateNamedParameter("carol")))
		b.OrderBy("username", "DESC")
		assertColumn(t, s.execute(t, b), "username", "carol", "bob")
	})

	t.Run("join", func(t *testing.T) {
		b := s.builder().Select("u.username", "p.title").From("users", "u")
		b.InnerJoin("u", "posts", "p", "p.user_id = u.id")
		b.Where(quill.Gt("p.views", b.CreatePositionalParameter(6)))
		b.OrderBy("p.views", "DESC")
		res := s.execute(t, b)
		assertColumn(t, res, "username", "alice", "bob")
		assertColumn(t, res, "title", "hello", "bob post")
	})

	t.Run("left join", func(t *testing.T) {
		b := s.builder().Select("u.username", quill.As(quill.Count("p.id"), "posts")).From("users", "u")
		b.LeftJoin("u", "posts", "p", "p.user_id = u.id")
		b.GroupBy("u.username").OrderBy("u.username")
		res := s.execute(t, b)
		assertColumn(t, res, "username", "alice", "bob", "carol")
		assertColumn(t, res, "posts", "2", "1", "0")
	})

	t.Run("group by having", func(t *testing.T) {
		b := s.builder().Select("user_id", quill.As(quill.Count(""), "n")).From("posts")
		b.GroupBy("user_id").Having(quill.Gt(quill.Count(""), "1"))
		res := s.execute(t, b)
		assertColumn(t, res, "user_id", "1")
		assertColumn(t, res, "n", "2")
	})

	t.Run("update", func(t *testing.T) {
		b := s.builder().Update("users").Set("age", b.CreateNamedParameter(31))
		b.Where(quill.Eq("username", b.CreateNamedParameter("alice")))
		if res := s.execute(t, b); res.RowsAffected != 1 {
			t.Errorf("Expected 1 row affected, got %d", res.RowsAffected)
		}

		check := s.builder().Select("age").From("users")
		check.Where(quill.Eq("username", check.CreatePositionalParameter("alice")))
		assertColumn(t, s.execute(t, check), "age", "31")
	})

	t.Run("delete", func(t *testing.T) {
		b := s.builder().Delete("posts")
		b.Where(quill.Lt("views", b.CreatePositionalParameter(6)))
		if res := s.execute(t, b); res.RowsAffected != 1 {
			t.Errorf("Expected 1 row affected, got %d", res.RowsAffected)
		}
	})

	t.Run("quoted literal", func(t *testing.T) {
		want := `it's a \ "quoted" value`
		b := s.builder()
		lit, err := b.Quote(want)
		if err != nil {
			t.Fatalf("Quote failed: %v", err)
		}
		b.Select(quill.As(lit.(string), "v")).From("users").OrderBy("id").Limit(1)
		assertColumn(t, s.execute(t, b), "v", want)
	})

	t.Run("reuse after execute", func(t *testing.T) {
		b := s.builder().Select("username").From("users").Where("age > 100")
		s.execute(t, b)
		if b.Kind() != quill.KindSelect || len(b.Sources()) != 0 {
			t.Error("Expected builder to be reset after Execute")
		}
		b.Select(quill.As(quill.Count(""), "n")).From("posts")
		assertColumn(t, s.execute(t, b), "n", "2")
	})
}
