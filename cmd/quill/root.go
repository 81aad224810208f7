package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zoobzio/quill"
	"github.com/zoobzio/quill/internal/config"
	"github.com/zoobzio/quill/internal/stmtfile"
)

// app holds the state shared by every command of one invocation.
type app struct {
	// Persistent flags
	cfgFile    string
	dialect    string
	schemaFile string
	verbose    bool

	// Set during PersistentPreRunE
	cfg        *config.Config
	configPath string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "quill",
		Short: "Assemble SQL statements from YAML documents",
		Long: `quill - SQL statement assembler

quill replays a YAML statement document onto a builder, renders it for a
dialect (mysql, postgres, sqlite, mssql) and optionally executes it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			var err error
			a.cfg, a.configPath, err = config.Load(a.cfgFile)
			if err != nil {
				return ConfigError("loading configuration", err)
			}
			if err := a.cfg.Validate(); err != nil {
				return ConfigError("invalid configuration", err)
			}

			a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Log.Level, a.verbose)
			a.logger.Debug("configuration loaded", "path", a.configPath)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover quill.yaml)")
	root.PersistentFlags().StringVarP(&a.dialect, "dialect", "d", "", "SQL dialect (overrides config)")
	root.PersistentFlags().StringVar(&a.schemaFile, "schema", "", "YAML table listing to validate against (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newExecCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		ExitWithError(err)
	}
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// builder loads the statement document at path onto a new builder configured
// with the effective dialect and schema.
func (a *app) builder(path string) (*quill.Builder, error) {
	name := resolveString(a.dialect, a.cfg.DialectName())
	d, err := quill.LookupDialect(name)
	if err != nil {
		return nil, ConfigError("selecting dialect", err)
	}
	opts := []quill.Option{quill.WithDialect(d)}

	if schemaPath := resolveString(a.schemaFile, a.cfg.Schema); schemaPath != "" {
		schema, err := stmtfile.LoadSchema(schemaPath)
		if err != nil {
			return nil, StatementError("loading schema", err)
		}
		opts = append(opts, quill.WithSchema(schema))
		a.logger.Debug("schema loaded", "path", schemaPath, "tables", len(schema.Tables()))
	}

	doc, err := stmtfile.Load(path)
	if err != nil {
		return nil, StatementError("loading statement", err)
	}

	b := quill.New(opts...)
	if err := doc.Apply(b); err != nil {
		return nil, StatementError("applying statement", err)
	}
	a.logger.Debug("statement loaded", "path", path, "kind", b.Kind(), "dialect", d.Name())
	return b, nil
}
