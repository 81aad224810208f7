package quill

import (
	"strings"

	"github.com/zoobzio/quill/internal/types"
)

// StatementKind represents the type of statement being assembled.
type StatementKind = types.StatementKind

// Re-export statement kinds for public API.
const (
	KindSelect = types.KindSelect
	KindInsert = types.KindInsert
	KindUpdate = types.KindUpdate
	KindDelete = types.KindDelete
)

// ParseKind converts a case-insensitive name such as "select" to a StatementKind.
func ParseKind(name string) (StatementKind, bool) {
	switch kind := StatementKind(strings.ToUpper(strings.TrimSpace(name))); kind {
	case KindSelect, KindInsert, KindUpdate, KindDelete:
		return kind, true
	}
	return "", false
}
