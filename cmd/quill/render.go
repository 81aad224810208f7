package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zoobzio/quill"
)

func newRenderCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a statement document as SQL",
		Long: `Render a statement document as SQL.

The SQL is printed on the first line, followed by one comment line per bound
parameter with its value quoted for the dialect.`,
		Example: `  # Render with the configured dialect
  quill render -f stmt.yaml

  # Render for PostgreSQL
  quill render -f stmt.yaml --dialect postgres`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.builder(file)
			if err != nil {
				return err
			}

			sql, err := b.Render()
			if err != nil {
				return StatementError("rendering statement", err)
			}
			a.logger.Debug("statement rendered", "params", b.Parameters().Len())

			return writeStatement(cmd.OutOrStdout(), b, sql)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "statement document (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// writeStatement prints sql followed by "-- :name = value" and "-- ?N = value"
// lines, named parameters first.
func writeStatement(w io.Writer, b *quill.Builder, sql string) error {
	if _, err := fmt.Fprintln(w, sql); err != nil {
		return err
	}

	params := b.Parameters()
	for _, name := range params.Names() {
		v, _ := params.Named(name)
		if err := writeParam(w, b, ":"+name, v); err != nil {
			return err
		}
	}
	for _, pos := range params.Positions() {
		v, _ := params.Positional(pos)
		if err := writeParam(w, b, fmt.Sprintf("?%d", pos), v); err != nil {
			return err
		}
	}
	return nil
}

func writeParam(w io.Writer, b *quill.Builder, key string, v any) error {
	quoted, err := b.Quote(v)
	if err != nil {
		return StatementError("quoting parameter "+key, err)
	}
	_, err = fmt.Fprintf(w, "-- %s = %v\n", key, quoted)
	return err
}
