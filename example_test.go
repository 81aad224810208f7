package quill_test

import (
	"fmt"

	"github.com/zoobzio/quill"
	"github.com/zoobzio/quill/postgres"
)

func ExampleBuilder_Select() {
	b := quill.New()
	sql := b.Select("u.id", "u.email").
		From("users", "u").
		LeftJoin("u", "posts", "p", "p.user_id = u.id").
		Where(quill.Eq("u.active", b.CreateNamedParameter(true))).
		OrWhere(quill.Gt("u.karma", b.CreatePositionalParameter(100))).
		OrderBy("u.id", "DESC").
		Limit(10).
		MustRender()

	fmt.Println(sql)
	fmt.Println(b.Parameters().Names(), b.Parameters().Positions())

	// Output:
	// SELECT u.id, u.email FROM users u LEFT JOIN posts p ON p.user_id = u.id WHERE (u.active = :dcValue1 OR u.karma > ?) ORDER BY u.id DESC LIMIT 0,10
	// [dcValue1] [2]
}

func ExampleBuilder_Insert() {
	sql := quill.New().
		Insert("users").
		Values(quill.V("name", "'a'"), quill.V("age", "5")).
		MustRender()

	fmt.Println(sql)

	// Output:
	// INSERT INTO users (name, age) VALUES ('a', 5)
}

func ExampleBuilder_Update() {
	sql := quill.New().
		Update("users", "u").
		Set("pwd", "?").
		Where("id = ?").
		Limit(1).
		MustRender()

	fmt.Println(sql)

	// Output:
	// UPDATE users u SET pwd = ? WHERE id = ? LIMIT 1
}

func ExampleWithDialect() {
	sql := quill.New(quill.WithDialect(postgres.New())).
		From("events", "e").
		Where(quill.In("e.kind", "'click'", "'view'")).
		OrderBy("e.at").
		Limit(50).
		Offset(100).
		MustRender()

	fmt.Println(sql)

	// Output:
	// SELECT e.* FROM events e WHERE e.kind IN ('click', 'view') ORDER BY e.at LIMIT 50 OFFSET 100
}
