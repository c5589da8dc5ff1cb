// Package tile implements rectangular text blocks that can be named,
// composed by template reference, measured, joined, and framed.
//
// A Tile is a value: every operation returns a new Tile and never mutates
// its inputs. Width is measured in terminal cells so tiles containing wide
// characters still line up when joined.
package tile

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
)

// Tile is an immutable rectangular block of text. The zero value is the
// empty tile: zero lines, width 0, height 0.
type Tile struct {
	lines []string
	width int
}

// New builds a tile from lines, top to bottom. The slice is copied so the
// caller keeps ownership of its backing array.
func New(lines []string) Tile {
	if len(lines) == 0 {
		return Tile{}
	}
	copied := make([]string, len(lines))
	copy(copied, lines)
	return Tile{lines: copied, width: maxLineWidth(copied)}
}

// FromString builds a tile by splitting s on line breaks. The empty string
// produces a one-line tile whose single line is empty, so String round-trips
// exactly: FromString(s).String() == s for every s.
func FromString(s string) Tile {
	lines := strings.Split(s, "\n")
	return Tile{lines: lines, width: maxLineWidth(lines)}
}

// Lines returns a copy of the tile's lines in top-to-bottom order.
func (t Tile) Lines() []string {
	if len(t.lines) == 0 {
		return nil
	}
	copied := make([]string, len(t.lines))
	copy(copied, t.lines)
	return copied
}

// String renders the tile as text, lines rejoined with line breaks.
// This is the only output format; an empty tile renders as "".
func (t Tile) String() string {
	return strings.Join(t.lines, "\n")
}

// Width is the cell width of the widest line, 0 for an empty tile.
func (t Tile) Width() int { return t.width }

// Height is the number of lines.
func (t Tile) Height() int { return len(t.lines) }

// Dimensions returns (width, height).
func (t Tile) Dimensions() (width, height int) {
	return t.width, len(t.lines)
}

// IsEmpty reports whether the tile has zero lines. A tile holding a single
// empty line is blank but not empty.
func (t Tile) IsEmpty() bool { return len(t.lines) == 0 }

// Trim returns a copy with trailing whitespace stripped from every line,
// leading and trailing blank lines dropped, and the common left margin of
// the remaining lines removed. Useful for tiles written as indented block
// literals; composition operations never trim implicitly.
func (t Tile) Trim() Tile {
	lines := make([]string, len(t.lines))
	for i, ln := range t.lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}

	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return Tile{}
	}

	// Common left margin over non-blank lines, counted in runes.
	margin := -1
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		indent := len([]rune(ln)) - len([]rune(strings.TrimLeft(ln, " ")))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin > 0 {
		for i, ln := range lines {
			r := []rune(ln)
			if len(r) > margin {
				lines[i] = string(r[margin:])
			} else {
				lines[i] = ""
			}
		}
	}
	return New(lines)
}

// Dimensions returns the cell width and line count of t.
// Equivalent to t.Dimensions; provided as the package-level geometry entry point.
func Dimensions(t Tile) (width, height int) {
	return t.Dimensions()
}

// maxLineWidth measures the widest line in cells.
func maxLineWidth(lines []string) int {
	w := 0
	for _, ln := range lines {
		if lw := runewidth.StringWidth(ln); lw > w {
			w = lw
		}
	}
	return w
}

// padRight pads s with spaces to the target cell width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return padding.String(s, uint(width)) //nolint:gosec // width checked non-negative
}
