package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoobzio/quill/internal/types"
)

// Sentinels matched by errors.Is against the structural error types.
var (
	ErrDuplicateAlias     = errors.New("duplicate alias")
	ErrUnknownAlias       = errors.New("unknown alias")
	ErrMalformedStatement = errors.New("malformed statement")
	ErrUnknownTable       = errors.New("unknown table")
	ErrUnknownColumn      = errors.New("unknown column")
	ErrUnsupportedFeature = errors.New("unsupported feature")
)

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// Is matches ErrUnsupportedFeature.
func (e UnsupportedFeatureError) Is(target error) bool {
	return target == ErrUnsupportedFeature
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// DuplicateAliasError indicates two sources or joins share a reference.
type DuplicateAliasError struct {
	Alias string
}

func (e DuplicateAliasError) Error() string {
	return fmt.Sprintf("duplicate alias %q", e.Alias)
}

// Is matches ErrDuplicateAlias.
func (e DuplicateAliasError) Is(target error) bool {
	return target == ErrDuplicateAlias
}

// UnknownAliasError indicates a join keyed off a reference that was never declared.
type UnknownAliasError struct {
	Alias string
	Known []string
}

func (e UnknownAliasError) Error() string {
	return fmt.Sprintf("join references unknown alias %q; known aliases: [%s]",
		e.Alias, strings.Join(e.Known, ", "))
}

// Is matches ErrUnknownAlias.
func (e UnknownAliasError) Is(target error) bool {
	return target == ErrUnknownAlias
}

// MalformedStatementError indicates a statement is missing required clauses.
type MalformedStatementError struct {
	Kind   types.StatementKind
	Reason string
}

func (e MalformedStatementError) Error() string {
	return fmt.Sprintf("malformed %s statement: %s", e.Kind, e.Reason)
}

// Is matches ErrMalformedStatement.
func (e MalformedStatementError) Is(target error) bool {
	return target == ErrMalformedStatement
}

// NewMalformedStatementError creates a new malformed statement error.
func NewMalformedStatementError(kind types.StatementKind, reason string) error {
	return MalformedStatementError{Kind: kind, Reason: reason}
}

// UnknownTableError indicates a table that is not part of the bound schema.
type UnknownTableError struct {
	Table string
}

func (e UnknownTableError) Error() string {
	return fmt.Sprintf("table %q is not defined in schema", e.Table)
}

// Is matches ErrUnknownTable.
func (e UnknownTableError) Is(target error) bool {
	return target == ErrUnknownTable
}

// UnknownColumnError indicates an INSERT column missing from its schema table.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q is not defined on table %q", e.Column, e.Table)
}

// Is matches ErrUnknownColumn.
func (e UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}
