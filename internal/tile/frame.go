package tile

import "strings"

// FrameStyle holds the border glyphs used by Frame. Glyphs are assumed to
// be a single cell wide.
type FrameStyle struct {
	// Horizontal is repeated to draw the top and bottom border lines.
	Horizontal string
	// Vertical is repeated down the left and right border columns.
	Vertical string
}

// DefaultFrameStyle returns the classic "="/"|" frame.
func DefaultFrameStyle() FrameStyle {
	return FrameStyle{Horizontal: "=", Vertical: "|"}
}

// Frame wraps t in a rectangular border using the default style.
// widthSpacing adds blank columns between the body and the side borders;
// heightSpacing adds blank rows above and below the body. Zero spacing
// means no spacer is inserted at all, not a single blank row or column.
func Frame(t Tile, widthSpacing, heightSpacing int) Tile {
	return FrameWithStyle(t, widthSpacing, heightSpacing, DefaultFrameStyle())
}

// FrameWithStyle is Frame with explicit border glyphs.
//
// The framed tile's top and bottom lines span the padded body width plus
// the two border columns, so Frame(t, 0, 0) has border lines of length
// t.Width()+2 and side columns of height t.Height().
func FrameWithStyle(t Tile, widthSpacing, heightSpacing int, style FrameStyle) Tile {
	body := t
	if heightSpacing > 0 {
		spacer := blankTile(1, heightSpacing)
		body = VerticalJoin([]Tile{spacer, body, spacer}, false, Tile{})
	}
	if widthSpacing > 0 {
		spacer := blankTile(widthSpacing, 1)
		body = HorizontalJoin([]Tile{spacer, body, spacer}, Tile{})
	}

	width, height := body.Dimensions()

	top := FromString(strings.Repeat(style.Horizontal, width+2))
	sideLines := make([]string, height)
	for i := range sideLines {
		sideLines[i] = style.Vertical
	}
	side := New(sideLines)

	middle := HorizontalJoin([]Tile{side, body, side}, Tile{})
	return VerticalJoin([]Tile{top, middle, top}, false, Tile{})
}

// blankTile builds a tile of height lines, each width spaces.
func blankTile(width, height int) Tile {
	if height <= 0 {
		return Tile{}
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return New(lines)
}
