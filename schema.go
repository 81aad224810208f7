package quill

import (
	"fmt"
	"sort"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/quill/internal/render"
	"github.com/zoobzio/quill/internal/types"
)

// Schema restricts the tables and INSERT columns a builder may reference to
// those declared in a DBML project.
type Schema struct {
	project *dbml.Project
	columns map[string]map[string]bool // table -> column
}

// NewSchemaFromDBML indexes a DBML project.
func NewSchemaFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		columns: make(map[string]map[string]bool),
	}
	for _, table := range project.Tables {
		cols := make(map[string]bool, len(table.Columns))
		for _, col := range table.Columns {
			cols[col.Name] = true
		}
		s.columns[table.Name] = cols
	}
	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// HasTable reports whether the schema declares the table.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// HasColumn reports whether the table declares the column.
func (s *Schema) HasColumn(table, column string) bool {
	return s.columns[table][column]
}

// Tables returns the declared table names in sorted order.
func (s *Schema) Tables() []string {
	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validate checks every source, join and INSERT column against the schema.
func (s *Schema) validate(store *types.Store) error {
	for _, src := range store.Sources() {
		if !s.HasTable(src.Table) {
			return render.UnknownTableError{Table: src.Table}
		}
	}
	for _, key := range store.JoinKeys() {
		for _, j := range store.Joins()[key] {
			if !s.HasTable(j.Table) {
				return render.UnknownTableError{Table: j.Table}
			}
		}
	}
	if store.Kind() == types.KindInsert && len(store.Sources()) == 1 {
		table := store.Sources()[0].Table
		for _, v := range store.Values() {
			if !s.HasColumn(table, v.Column) {
				return render.UnknownColumnError{Table: table, Column: v.Column}
			}
		}
	}
	return nil
}
