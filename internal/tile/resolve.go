package tile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tilekit/tilekit/internal/log"
)

// markerPattern matches placeholder markers of the form @{identifier},
// where identifier is an alphanumeric/underscore token.
var markerPattern = regexp.MustCompile(`@\{([A-Za-z0-9_]+)\}`)

// Resolve expands every @{name} marker in template against the registry
// and returns the composed tile. Substitution is exact: a referenced
// tile's text replaces its marker with no trimming or normalization, and
// markers inside referenced tiles expand transitively, so previously
// resolved tiles can be referenced as building blocks.
//
// A marker naming an entry that was never defined fails with
// ErrUnresolvedReference. Expansion tracks the names on the current chain;
// meeting one a second time means the definitions are self- or mutually-
// referential and fails with ErrResolutionCycle before any repeated work
// is done, so a definition referencing itself many times over cannot blow
// up the working string. The registry is never modified by resolution.
func (r *Registry) Resolve(template string) (Tile, error) {
	s, err := r.expand(template, make(map[string]bool))
	if err != nil {
		return Tile{}, err
	}
	return FromString(s), nil
}

// expand substitutes every marker in s, expanding referenced tiles
// depth-first. expanding holds the names on the current expansion chain.
func (r *Registry) expand(s string, expanding map[string]bool) (string, error) {
	matches := markerPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		name := s[m[2]:m[3]]
		if expanding[name] {
			log.Debug(log.CatResolve, "resolution cycle", "name", name)
			return "", fmt.Errorf("%w: %q expands through itself", ErrResolutionCycle, name)
		}
		t, ok := r.tiles[name]
		if !ok {
			log.Debug(log.CatResolve, "unresolved reference", "name", name)
			return "", fmt.Errorf("%w: %q", ErrUnresolvedReference, name)
		}

		expanding[name] = true
		inner, err := r.expand(t.String(), expanding)
		if err != nil {
			return "", err
		}
		delete(expanding, name)

		b.WriteString(s[prev:m[0]])
		b.WriteString(inner)
		prev = m[1]
	}
	b.WriteString(s[prev:])
	return b.String(), nil
}

// ResolveAndStore resolves template and, on success, defines the result
// under name so later templates can reference it. On failure nothing is
// stored.
func (r *Registry) ResolveAndStore(name, template string) (Tile, error) {
	t, err := r.Resolve(template)
	if err != nil {
		return Tile{}, err
	}
	r.Define(name, t)
	return t, nil
}

// References returns the marker names template mentions directly, in first
// appearance order without duplicates. It does not consult a registry or
// follow references transitively.
func References(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range markerPattern.FindAllStringSubmatch(template, -1) {
		if name := m[1]; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ValidName reports whether name can be referenced from a template, i.e.
// whether it is a marker identifier.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
