package tile

// Separator is the optional tile interleaved between entries by the join
// operations. The empty tile means no separator; under the padding rules a
// zero-line separator contributes nothing, so the two readings coincide.
//
// Both joins are associative: joining [A, B, C] equals joining
// [A, join(B, C)] equals joining [join(A, B), C], because every tile is
// padded to its own width before concatenation (horizontal) or to the
// common width of the whole sequence (vertical). The property tests in
// join_test.go hold the engine to this.

// HorizontalJoin places tiles side by side. Every line of each tile is
// right-padded with spaces to that tile's own width, shorter tiles are
// bottom-padded with blank lines to the tallest height, and output line i
// is the concatenation of each tile's line i, with the separator's line i
// between entries. An empty input sequence yields the empty tile.
func HorizontalJoin(tiles []Tile, sep Tile) Tile {
	if len(tiles) == 0 {
		return Tile{}
	}
	seq := interleave(tiles, sep)

	height := 0
	for _, t := range seq {
		if t.Height() > height {
			height = t.Height()
		}
	}
	if height == 0 {
		return Tile{}
	}

	out := make([]string, height)
	for _, t := range seq {
		for i := 0; i < height; i++ {
			var ln string
			if i < len(t.lines) {
				ln = t.lines[i]
			}
			out[i] += padRight(ln, t.width)
		}
	}
	return New(out)
}

// VerticalJoin stacks tiles top to bottom. With padToCommonWidth set,
// every line of every tile (separator included) is right-padded with
// spaces to the widest tile in the sequence, so borders drawn afterwards
// align. The separator's lines are interleaved between consecutive blocks.
// An empty input sequence yields the empty tile.
func VerticalJoin(tiles []Tile, padToCommonWidth bool, sep Tile) Tile {
	if len(tiles) == 0 {
		return Tile{}
	}
	seq := interleave(tiles, sep)

	width := 0
	if padToCommonWidth {
		for _, t := range seq {
			if t.width > width {
				width = t.width
			}
		}
	}

	var out []string
	for _, t := range seq {
		for _, ln := range t.lines {
			if padToCommonWidth {
				ln = padRight(ln, width)
			}
			out = append(out, ln)
		}
	}
	return New(out)
}

// interleave inserts sep between consecutive tiles. A zero-line separator
// is skipped outright since it would contribute nothing.
func interleave(tiles []Tile, sep Tile) []Tile {
	if sep.IsEmpty() || len(tiles) < 2 {
		return tiles
	}
	seq := make([]Tile, 0, 2*len(tiles)-1)
	for i, t := range tiles {
		if i > 0 {
			seq = append(seq, sep)
		}
		seq = append(seq, t)
	}
	return seq
}
