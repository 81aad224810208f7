package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/quill"
	"github.com/zoobzio/quill/db"
)

// resultDocument is the YAML form of a quill.Result. Only the fields for the
// statement kind are set.
type resultDocument struct {
	Kind         string           `yaml:"kind"`
	SQL          string           `yaml:"sql"`
	LastInsertID *int64           `yaml:"last_insert_id,omitempty"`
	RowsAffected *int64           `yaml:"rows_affected,omitempty"`
	RowCount     *int             `yaml:"row_count,omitempty"`
	Rows         []map[string]any `yaml:"rows,omitempty"`
}

func newResultDocument(res *quill.Result) resultDocument {
	doc := resultDocument{Kind: string(res.Kind), SQL: res.SQL}
	switch res.Kind {
	case quill.KindInsert:
		doc.LastInsertID = &res.LastInsertID
	case quill.KindUpdate, quill.KindDelete:
		doc.RowsAffected = &res.RowsAffected
	case quill.KindSelect:
		n := len(res.Rows)
		doc.RowCount = &n
		doc.Rows = res.Rows
	}
	return doc
}

func newExecCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Execute a statement document against the configured database",
		Long: `Execute a statement document against the database configured by
database.driver and database.dsn (or QUILL_DATABASE_DRIVER / QUILL_DATABASE_DSN).

The result is printed as YAML.`,
		Example: `  # Run against a SQLite file
  QUILL_DATABASE_DRIVER=sqlite QUILL_DATABASE_DSN=app.db quill exec -f stmt.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return ConfigError("database not configured", err)
			}

			b, err := a.builder(file)
			if err != nil {
				return err
			}
			if _, err := b.Render(); err != nil {
				return StatementError("rendering statement", err)
			}

			ex, err := db.Open(a.cfg.Database.Driver, a.cfg.Database.DSN)
			if err != nil {
				return DatabaseError("opening database", err)
			}
			defer func() { _ = ex.Close() }()

			ctx := cmd.Context()
			if err := ex.DB().PingContext(ctx); err != nil {
				return DatabaseError("connecting to database", err)
			}

			a.logger.Info("executing statement", "kind", b.Kind(), "driver", a.cfg.Database.Driver)
			res, err := b.Execute(ctx, ex)
			if err != nil {
				return DatabaseError("executing statement", err)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newResultDocument(res)); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "statement document (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
