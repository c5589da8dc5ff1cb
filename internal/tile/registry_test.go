package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ===========================================================================
// Tests for Define / Lookup / Clear
// ===========================================================================

func TestRegistry_DefineAndLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Define("greeting", FromString("hello"))

	got, ok := reg.Lookup("greeting")
	require.True(t, ok, "defined name should be found")
	require.Equal(t, "hello", got.String())
}

func TestRegistry_LookupAbsent(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Lookup("missing")
	require.False(t, ok, "never-written name should be absent")
}

func TestRegistry_DefineOverwrites(t *testing.T) {
	reg := NewRegistry()
	reg.Define("x", FromString("first"))
	reg.Define("x", FromString("second"))

	got, ok := reg.Lookup("x")
	require.True(t, ok)
	require.Equal(t, "second", got.String(), "later writes should overwrite earlier ones")
	require.Equal(t, 1, reg.Len(), "overwrite should not add an entry")
}

func TestRegistry_ClearKeepsKey(t *testing.T) {
	reg := NewRegistry()
	reg.Define("x", FromString("value"))
	reg.Clear("x")

	got, ok := reg.Lookup("x")
	require.True(t, ok, "cleared name should still be present")
	require.True(t, got.IsEmpty(), "cleared entry should be the empty tile")
}

func TestRegistry_ClearUndefinedName(t *testing.T) {
	reg := NewRegistry()
	reg.Clear("fresh")

	got, ok := reg.Lookup("fresh")
	require.True(t, ok, "clearing creates the key")
	require.True(t, got.IsEmpty())
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Define("b", FromString("2"))
	reg.Define("a", FromString("1"))
	reg.Define("c", FromString("3"))
	require.Equal(t, []string{"a", "b", "c"}, reg.Names())
}

func TestRegistry_BlankNames(t *testing.T) {
	reg := NewRegistry()
	reg.Define("full", FromString("x"))
	reg.Define("explicit", Tile{})
	reg.Define("cleared", FromString("y"))
	reg.Clear("cleared")

	require.Equal(t, []string{"cleared", "explicit"}, reg.BlankNames())
}

// ===========================================================================
// Tests for DefineFormatted
// ===========================================================================

func TestDefineFormatted_NoArgsVerbatim(t *testing.T) {
	reg := NewRegistry()
	// With no args the pattern is stored as-is, percent signs included.
	require.NoError(t, reg.DefineFormatted("raw", "100%d done"))

	got, _ := reg.Lookup("raw")
	require.Equal(t, "100%d done", got.String())
}

func TestDefineFormatted_StringArgs(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.DefineFormatted("msg", "%s, %s!", "hello", "world"))

	got, _ := reg.Lookup("msg")
	require.Equal(t, "hello, world!", got.String())
}

func TestDefineFormatted_TileArg(t *testing.T) {
	reg := NewRegistry()
	body := New([]string{"one", "two"})
	require.NoError(t, reg.DefineFormatted("wrapped", "<%s>", body))

	got, _ := reg.Lookup("wrapped")
	require.Equal(t, "<one\ntwo>", got.String(), "tile args should render as their text")
	require.Equal(t, 2, got.Height(), "multi-line result should split into lines")
}

func TestDefineFormatted_SequenceArg(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.DefineFormatted("listed", "%s", []string{"a", "b", "c"}))

	got, _ := reg.Lookup("listed")
	require.Equal(t, "a\nb\nc", got.String(), "string slices should render as their multi-line join")
}

func TestDefineFormatted_ArityMismatch(t *testing.T) {
	reg := NewRegistry()

	err := reg.DefineFormatted("bad", "%s and %s", "only one")
	require.ErrorIs(t, err, ErrFormat, "missing operand should be a format error")

	err = reg.DefineFormatted("bad", "%s", "one", "two")
	require.ErrorIs(t, err, ErrFormat, "extra operand should be a format error")

	_, ok := reg.Lookup("bad")
	require.False(t, ok, "failed DefineFormatted should not touch the registry")
}

func TestDefineFormatted_PercentInArguments(t *testing.T) {
	reg := NewRegistry()
	// "100%" followed by the pattern's "!" renders "100%!", which must not
	// be mistaken for one of fmt's in-band error markers.
	require.NoError(t, reg.DefineFormatted("pct", "%s!", "100%"))

	got, _ := reg.Lookup("pct")
	require.Equal(t, "100%!", got.String())

	body := FromString("50%! done\n99%! left")
	require.NoError(t, reg.DefineFormatted("progress", "<%s>", body),
		"tile content containing %%! should format cleanly")
	got, _ = reg.Lookup("progress")
	require.Equal(t, "<50%! done\n99%! left>", got.String())
}

func TestDefineFormatted_EscapedPercentInPattern(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.DefineFormatted("load", "%s at 100%%!", "cpu"))

	got, _ := reg.Lookup("load")
	require.Equal(t, "cpu at 100%!", got.String())
}

func TestDefineFormatted_BadVerb(t *testing.T) {
	reg := NewRegistry()
	err := reg.DefineFormatted("bad", "%d", "not a number")
	require.ErrorIs(t, err, ErrFormat, "type mismatch should be a format error")
}
