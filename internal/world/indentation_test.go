package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndentationClamps(t *testing.T) {
	i := NewIndentation(-3, 42)
	require.Equal(t, 0, i.Start())
	require.Equal(t, IndentationMax, i.End())
}

func TestIndentationIndent(t *testing.T) {
	var i Indentation
	require.True(t, i.IsZero())

	i.IndentStart(3)
	i.IndentEnd(2)
	require.Equal(t, 3, i.Start())
	require.Equal(t, 2, i.End())
	require.Equal(t, 3, i.Offset())

	i.IndentStart(-5)
	require.Equal(t, 0, i.Start())

	i.IndentEnd(100)
	require.Equal(t, IndentationMax, i.End())
}

func TestIndentationOverlap(t *testing.T) {
	i := NewIndentation(6, 7)
	require.Equal(t, -5, i.Offset())
}

func TestIndentationSet(t *testing.T) {
	var i Indentation
	i.SetStart(9)
	i.SetEnd(-1)
	require.Equal(t, IndentationMax, i.Start())
	require.Equal(t, 0, i.End())
}

func TestIndentationMirror(t *testing.T) {
	i := NewIndentation(1, 5)
	require.Equal(t, NewIndentation(5, 1), i.Mirrored())

	i.Mirror()
	require.Equal(t, 5, i.Start())
	require.Equal(t, 1, i.End())
	require.Equal(t, "5/1", i.String())
}
