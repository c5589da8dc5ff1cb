package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ===========================================================================
// Tests for Tile construction and geometry
// ===========================================================================

func TestTile_ZeroValue(t *testing.T) {
	var empty Tile
	w, h := empty.Dimensions()
	require.Equal(t, 0, w, "empty tile width should be 0")
	require.Equal(t, 0, h, "empty tile height should be 0")
	require.True(t, empty.IsEmpty(), "zero value should be empty")
	require.Equal(t, "", empty.String(), "empty tile should render as empty string")
	require.Nil(t, empty.Lines(), "empty tile should have no lines")
}

func TestNew_Dimensions(t *testing.T) {
	tl := New([]string{"ab", "cde"})
	w, h := tl.Dimensions()
	require.Equal(t, 3, w, "width should be the longest line")
	require.Equal(t, 2, h, "height should be the line count")
}

func TestNew_CopiesInput(t *testing.T) {
	lines := []string{"one", "two"}
	tl := New(lines)
	lines[0] = "mutated"
	require.Equal(t, "one\ntwo", tl.String(), "tile should not observe caller mutation")

	got := tl.Lines()
	got[1] = "mutated"
	require.Equal(t, "one\ntwo", tl.String(), "tile should not observe mutation of Lines result")
}

func TestNew_EmptyAndBlankLines(t *testing.T) {
	require.True(t, New(nil).IsEmpty(), "nil lines should build the empty tile")
	require.True(t, New([]string{}).IsEmpty(), "no lines should build the empty tile")

	blank := New([]string{""})
	require.False(t, blank.IsEmpty(), "a single empty line is blank, not empty")
	require.Equal(t, 1, blank.Height(), "blank tile should have height 1")
	require.Equal(t, 0, blank.Width(), "blank tile should have width 0")
}

func TestFromString_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "one\ntwo", "\n", "  padded  \n\nx"} {
		require.Equal(t, s, FromString(s).String(), "FromString/String should round-trip %q", s)
	}
}

func TestDimensions_PackageLevel(t *testing.T) {
	w, h := Dimensions(New([]string{"ab", "cde"}))
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
}

func TestDimensions_WideRunes(t *testing.T) {
	// CJK characters occupy two cells each.
	w, h := FromString("日本語").Dimensions()
	require.Equal(t, 6, w, "wide runes should count two cells each")
	require.Equal(t, 1, h)
}

// ===========================================================================
// Tests for Trim
// ===========================================================================

func TestTrim_StripsMarginAndBlankEdges(t *testing.T) {
	tl := FromString("\n    one\n      two\n    three   \n\n").Trim()
	require.Equal(t, "one\n  two\nthree", tl.String(),
		"Trim should drop blank edge lines, trailing spaces, and the common margin")
}

func TestTrim_KeepsInteriorBlankLines(t *testing.T) {
	tl := FromString("  a\n\n  b").Trim()
	require.Equal(t, "a\n\nb", tl.String(), "interior blank lines should survive")
}

func TestTrim_AllBlank(t *testing.T) {
	require.True(t, FromString("\n   \n\t\n").Trim().IsEmpty(),
		"a tile of only whitespace should trim to the empty tile")
}

func TestTrim_DoesNotMutateReceiver(t *testing.T) {
	orig := FromString("  a  ")
	_ = orig.Trim()
	require.Equal(t, "  a  ", orig.String(), "Trim should return a copy")
}
