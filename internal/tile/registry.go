package tile

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is a named store mapping identifiers to tiles. It is an explicit,
// caller-owned object: it carries no synchronization, so a registry must be
// confined to one goroutine or guarded externally. Use one registry per
// goroutine for concurrent work.
type Registry struct {
	tiles map[string]Tile
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tiles: make(map[string]Tile)}
}

// Define inserts or overwrites the entry for name. It always succeeds;
// later writes replace earlier ones with no versioning.
func (r *Registry) Define(name string, t Tile) {
	r.tiles[name] = t
}

// DefineFormatted formats args into pattern and stores the result under
// name as a (possibly multi-line) tile. Tile arguments render as their
// text, string slices as their multi-line join, and everything else passes
// through standard fmt formatting. With no args the pattern is stored
// verbatim. A pattern/argument mismatch returns ErrFormat and leaves the
// registry untouched.
func (r *Registry) DefineFormatted(name, pattern string, args ...any) error {
	text := pattern
	if len(args) > 0 {
		rendered := make([]any, len(args))
		for i, arg := range args {
			rendered[i] = renderArg(arg)
		}
		if formatFailed(pattern, rendered) {
			return fmt.Errorf("%w: pattern %q with %d args", ErrFormat, pattern, len(args))
		}
		text = fmt.Sprintf(pattern, rendered...)
	}
	r.Define(name, FromString(text))
	return nil
}

// Clear sets the entry for name to the empty tile. The key itself is kept:
// subsequent lookups return the empty tile, not absence. There is no
// operation that removes a key.
func (r *Registry) Clear(name string) {
	r.tiles[name] = Tile{}
}

// Lookup returns the tile stored under name. The second result is false if
// the name was never defined nor cleared.
func (r *Registry) Lookup(name string) (Tile, bool) {
	t, ok := r.tiles[name]
	return t, ok
}

// Len reports the number of entries, cleared ones included.
func (r *Registry) Len() int { return len(r.tiles) }

// Names returns every stored name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tiles))
	for name := range r.tiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BlankNames returns the sorted names whose entries are empty tiles,
// whether cleared or defined empty.
func (r *Registry) BlankNames() []string {
	var names []string
	for name, t := range r.tiles {
		if t.IsEmpty() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// renderArg maps a format argument to its textual form. The closed set of
// special cases mirrors what templates can hold: tiles and line sequences.
func renderArg(arg any) any {
	switch v := arg.(type) {
	case Tile:
		return v.String()
	case *Tile:
		if v == nil {
			return ""
		}
		return v.String()
	case []string:
		return strings.Join(v, "\n")
	default:
		return arg
	}
}

// formatFailed reports whether fmt cannot apply args to pattern: a bad verb
// ("%!d(...)"), a missing operand ("%!s(MISSING)") or an extra one
// ("%!(EXTRA ..."). fmt signals these in-band with "%!" markers, so the
// check formats copies with every literal percent removed — from string
// arguments and from the pattern's "%%" escapes — and any marker left in
// the output comes from fmt itself, never from argument content.
func formatFailed(pattern string, args []any) bool {
	scrubbed := make([]any, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			scrubbed[i] = strings.ReplaceAll(s, "%", "")
		} else {
			scrubbed[i] = arg
		}
	}
	literal := strings.ReplaceAll(pattern, "%%", "")
	return strings.Contains(fmt.Sprintf(literal, scrubbed...), "%!")
}
