package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSourceID(t *testing.T) {
	t.Run("zero value for empty string", func(t *testing.T) {
		sid := NewSourceID("")
		require.True(t, sid.IsZero())
	})

	t.Run("synthetic identifier", func(t *testing.T) {
		sid := NewSourceID("<stdin>")
		require.False(t, sid.IsZero())
		require.Equal(t, "<stdin>", sid.String())
	})
}

func TestSourceIDFromPath(t *testing.T) {
	t.Run("cleans redundant separators", func(t *testing.T) {
		a := SourceIDFromPath("docs/./example.bel")
		b := SourceIDFromPath("docs/example.bel")
		require.Equal(t, a, b)
	})

	t.Run("distinguishes different paths", func(t *testing.T) {
		a := SourceIDFromPath("docs/a.bel")
		b := SourceIDFromPath("docs/b.bel")
		require.NotEqual(t, a, b)
	})
}

func TestNewSyntheticSourceID(t *testing.T) {
	t.Run("not zero", func(t *testing.T) {
		sid := NewSyntheticSourceID()
		require.False(t, sid.IsZero())
	})

	t.Run("tagged distinctly from a file-backed source", func(t *testing.T) {
		sid := NewSyntheticSourceID()
		require.True(t, strings.HasPrefix(sid.String(), "inline:"))
	})

	t.Run("never collides across calls", func(t *testing.T) {
		a := NewSyntheticSourceID()
		b := NewSyntheticSourceID()
		require.NotEqual(t, a, b)
	})
}

func TestSourceIDEquality(t *testing.T) {
	a := NewSourceID("inline:test")
	b := NewSourceID("inline:test")
	require.Equal(t, a, b)
	require.True(t, a == b)
}
