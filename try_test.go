package bchan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryGet_EmptyOpenChannel(t *testing.T) {
	ch := New[int](4)

	_, err := ch.TryGet()
	assert.ErrorIs(t, err, ErrWouldBlock)
}

func TestTryGet_ReturnsValueThenWouldBlock(t *testing.T) {
	ch := New[int](4)
	require.NoError(t, ch.Put(5))

	v, err := ch.TryGet()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = ch.TryGet()
	assert.ErrorIs(t, err, ErrWouldBlock)
}

func TestTryGet_ClosedEmpty(t *testing.T) {
	ch := New[int](4)
	ch.Close()

	_, err := ch.TryGet()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTryGet_DrainsClosedChannel(t *testing.T) {
	ch := New[int](4)
	require.NoError(t, ch.Put(1))
	require.NoError(t, ch.Put(2))
	ch.Close()

	v, err := ch.TryGet()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = ch.TryGet()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = ch.TryGet()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTryPut_FullChannel(t *testing.T) {
	ch := New[int](2)
	require.NoError(t, ch.TryPut(1))
	require.NoError(t, ch.TryPut(2))

	assert.ErrorIs(t, ch.TryPut(3), ErrWouldBlock)

	v, err := ch.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// A slot freed up; TryPut succeeds again.
	assert.NoError(t, ch.TryPut(3))
}

func TestTryPut_Closed(t *testing.T) {
	ch := New[int](2)
	ch.Close()

	assert.ErrorIs(t, ch.TryPut(1), ErrClosed)
}

func TestTryPut_FIFOWithTryGet(t *testing.T) {
	ch := New[string](3)
	require.NoError(t, ch.TryPut("a"))
	require.NoError(t, ch.TryPut("b"))

	v, err := ch.TryGet()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, ch.TryPut("c"))

	v, err = ch.TryGet()
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = ch.TryGet()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}
