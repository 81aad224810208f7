package stmtfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/quill"
	"gopkg.in/yaml.v3"
)

// SchemaDocument lists tables and their columns with types, in document order.
//
//	tables:
//	  users:
//	    id: bigint
//	    email: varchar
type SchemaDocument struct {
	Name   string           `yaml:"name"`
	Tables map[string]Pairs `yaml:"tables"`
}

// LoadSchema reads a schema document and builds a quill.Schema from it.
func LoadSchema(path string) (*quill.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var doc SchemaDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("invalid schema: no tables")
	}
	return quill.NewSchemaFromDBML(doc.Project())
}

// Project converts the document into a DBML project.
func (d *SchemaDocument) Project() *dbml.Project {
	name := d.Name
	if name == "" {
		name = "quill"
	}
	project := dbml.NewProject(name)
	for tableName, columns := range d.Tables {
		table := dbml.NewTable(tableName)
		for _, col := range columns {
			table.AddColumn(dbml.NewColumn(col.Column, col.Expr))
		}
		project.AddTable(table)
	}
	return project
}
