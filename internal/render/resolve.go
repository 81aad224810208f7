package render

import (
	"strings"

	"github.com/zoobzio/quill/internal/types"
)

// resolver walks sources and their joins, registering every reference.
type resolver struct {
	joins map[string][]types.Join
	seen  map[string]bool
	known []string
}

func (r *resolver) register(ref string) error {
	if r.seen[ref] {
		return DuplicateAliasError{Alias: ref}
	}
	r.seen[ref] = true
	r.known = append(r.known, ref)
	return nil
}

func (r *resolver) walk(sb *strings.Builder, ref string) error {
	for _, j := range r.joins[ref] {
		sb.WriteString(j.SQL())
		if err := r.register(j.Ref()); err != nil {
			return err
		}
		if err := r.walk(sb, j.Ref()); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSources renders each source followed by its joins, depth first, in
// declaration order. Join keys are checked after the walk so a join may name a
// source declared later; a key that was never reached fails with
// UnknownAliasError. keys gives the order in which join keys are checked.
func ResolveSources(sources []types.Source, joins map[string][]types.Join, keys []string) ([]string, error) {
	r := &resolver{joins: joins, seen: make(map[string]bool)}
	refs := make([]string, 0, len(sources))

	for _, src := range sources {
		var sb strings.Builder
		sb.WriteString(src.SQL())
		if err := r.register(src.Ref()); err != nil {
			return nil, err
		}
		if err := r.walk(&sb, src.Ref()); err != nil {
			return nil, err
		}
		refs = append(refs, sb.String())
	}

	for _, key := range keys {
		if len(joins[key]) > 0 && !r.seen[key] {
			return nil, UnknownAliasError{Alias: key, Known: append([]string(nil), r.known...)}
		}
	}
	return refs, nil
}
