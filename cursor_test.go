package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Lookahead(t *testing.T) {
	c := NewCursor([]rune("ab"))

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, 'a', first)

	second, ok := c.Second()
	require.True(t, ok)
	assert.Equal(t, 'b', second)

	assert.Equal(t, 0, c.Pos(), "lookahead must not advance")
	assert.Equal(t, 2, c.Rest())
}

func TestCursor_BumpToEnd(t *testing.T) {
	c := NewCursor([]rune("xy"))

	r, ok := c.Bump()
	require.True(t, ok)
	assert.Equal(t, 'x', r)
	assert.Equal(t, 1, c.Pos())

	_, ok = c.Second()
	assert.False(t, ok)

	r, ok = c.Bump()
	require.True(t, ok)
	assert.Equal(t, 'y', r)

	_, ok = c.Bump()
	assert.False(t, ok)
	_, ok = c.First()
	assert.False(t, ok)
	assert.Equal(t, 2, c.Pos(), "bump at end of input must not move the position")
}

func TestCursor_CopyIsSnapshot(t *testing.T) {
	c := NewCursor([]rune("hello"))
	snapshot := c

	for i := 0; i < 3; i++ {
		_, ok := snapshot.Bump()
		require.True(t, ok)
	}

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 3, snapshot.Pos())

	r, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, 'h', r)
}

func TestCursor_Unicode(t *testing.T) {
	c := NewCursor([]rune("日本"))
	r, ok := c.Bump()
	require.True(t, ok)
	assert.Equal(t, '日', r)
	assert.Equal(t, 1, c.Pos(), "positions count characters, not bytes")
}

func TestPosition_Text(t *testing.T) {
	src := []rune("let foo = 1")

	text, ok := NewPosition(4, 6).Text(src)
	require.True(t, ok)
	assert.Equal(t, "foo", text)

	_, ok = NewPosition(4, 11).Text(src)
	assert.False(t, ok)
	_, ok = NewPosition(3, 2).Text(src)
	assert.False(t, ok)

	assert.Equal(t, 3, NewPosition(4, 6).Len())
	assert.True(t, NewPosition(4, 6).Contains(6))
	assert.False(t, NewPosition(4, 6).Contains(7))
	assert.Equal(t, "4..6", NewPosition(4, 6).String())
}
