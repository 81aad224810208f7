package quill

import (
	"errors"

	"github.com/zoobzio/quill/internal/render"
)

// Structural and dialect errors, re-exported from internal/render.
type (
	DuplicateAliasError     = render.DuplicateAliasError
	UnknownAliasError       = render.UnknownAliasError
	MalformedStatementError = render.MalformedStatementError
	UnsupportedFeatureError = render.UnsupportedFeatureError
	UnknownTableError       = render.UnknownTableError
	UnknownColumnError      = render.UnknownColumnError
)

// Sentinels for errors.Is.
var (
	ErrDuplicateAlias     = render.ErrDuplicateAlias
	ErrUnknownAlias       = render.ErrUnknownAlias
	ErrMalformedStatement = render.ErrMalformedStatement
	ErrUnsupportedFeature = render.ErrUnsupportedFeature
	ErrUnknownTable       = render.ErrUnknownTable
	ErrUnknownColumn      = render.ErrUnknownColumn

	// ErrUnknownDialect is returned by LookupDialect.
	ErrUnknownDialect = errors.New("unknown dialect")
)
