// Package tileset loads YAML tileset documents and applies them to a tile
// registry. A tileset names literal tile bodies and templates:
//
//	tiles:
//	  greeting: |
//	    Hello
//	templates:
//	  banner: "@{greeting}, world"
//	render: banner
//
// Tiles are stored as written (after block trimming, so indented YAML
// scalars read naturally); templates are resolved in declaration order so a
// template may build on any tile or earlier template.
package tileset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tilekit/tilekit/internal/log"
	"github.com/tilekit/tilekit/internal/tile"
)

// Template is a named template body, kept in declaration order.
type Template struct {
	Name string
	Body string
}

// Set is a parsed tileset document.
type Set struct {
	Tiles     map[string]string `yaml:"tiles"`
	Templates TemplateList      `yaml:"templates"`
	Render    string            `yaml:"render"`
}

// TemplateList preserves the YAML mapping order of the templates section,
// which plain map unmarshaling would lose.
type TemplateList []Template

// UnmarshalYAML decodes a mapping node into an ordered template list.
func (l *TemplateList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("templates must be a mapping, got %s", nodeKind(node))
	}
	list := make(TemplateList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var body string
		if err := node.Content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("template %q: %w", node.Content[i].Value, err)
		}
		list = append(list, Template{Name: node.Content[i].Value, Body: body})
	}
	*l = list
	return nil
}

// Load reads and parses the tileset document at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied tileset document
	if err != nil {
		return nil, fmt.Errorf("reading tileset: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing tileset %s: %w", path, err)
	}

	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("tileset %s: %w", path, err)
	}
	log.Debug(log.CatTileset, "loaded tileset", "path", path,
		"tiles", len(set.Tiles), "templates", len(set.Templates))
	return &set, nil
}

// validate rejects names that templates could never reference.
func (s *Set) validate() error {
	for name := range s.Tiles {
		if !tile.ValidName(name) {
			return fmt.Errorf("tile name %q is not a valid identifier", name)
		}
	}
	for _, tmpl := range s.Templates {
		if !tile.ValidName(tmpl.Name) {
			return fmt.Errorf("template name %q is not a valid identifier", tmpl.Name)
		}
	}
	if s.Render != "" && !tile.ValidName(s.Render) {
		return fmt.Errorf("render target %q is not a valid identifier", s.Render)
	}
	return nil
}

// Apply populates reg with the set's tiles, then resolves and stores each
// template in declaration order. Tile bodies are block-trimmed; template
// resolution errors carry the template name.
func (s *Set) Apply(reg *tile.Registry) error {
	// Deterministic definition order for tiles; they cannot reference each
	// other at definition time, so any order works.
	names := make([]string, 0, len(s.Tiles))
	for name := range s.Tiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		reg.Define(name, tile.FromString(s.Tiles[name]).Trim())
	}

	for _, tmpl := range s.Templates {
		if _, err := reg.ResolveAndStore(tmpl.Name, tmpl.Body); err != nil {
			return fmt.Errorf("template %q: %w", tmpl.Name, err)
		}
	}
	return nil
}

// nodeKind names a YAML node kind for error messages.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}
