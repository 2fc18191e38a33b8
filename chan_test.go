package bchan

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsOnBadCapacity(t *testing.T) {
	assert.Panics(t, func() {
		New[int](0)
	})
	assert.Panics(t, func() {
		New[int](-3)
	})
}

func TestPutGet_FIFO(t *testing.T) {
	ch := New[int](8)

	for i := 1; i <= 8; i++ {
		require.NoError(t, ch.Put(i))
	}
	for i := 1; i <= 8; i++ {
		v, err := ch.Get()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestPutGet_WrapsAroundCapacity(t *testing.T) {
	ch := New[int](3)

	// Several rounds so the cursors wrap mod capacity more than once.
	next := 0
	for round := 0; round < 5; round++ {
		for i := 0; i < 3; i++ {
			require.NoError(t, ch.Put(next + i))
		}
		for i := 0; i < 3; i++ {
			v, err := ch.Get()
			require.NoError(t, err)
			assert.Equal(t, next+i, v)
		}
		next += 3
	}
	assert.True(t, ch.IsEmpty())
}

func TestGet_BlocksUntilPut(t *testing.T) {
	ch := New[string](4)

	got := make(chan string, 1)
	go func() {
		v, err := ch.Get()
		if err == nil {
			got <- v
		}
	}()

	select {
	case v := <-got:
		t.Fatalf("Get returned %q before any Put", v)
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, ch.Put("hello"))

	select {
	case v := <-got:
		assert.Equal(t, "hello", v)
	case <-time.After(time.Second):
		t.Fatal("Get did not return after Put")
	}
}

func TestPut_BlocksWhenFull(t *testing.T) {
	ch := New[int](1)
	require.NoError(t, ch.Put(1))

	done := make(chan struct{})
	go func() {
		_ = ch.Put(2)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Put on a full channel returned without a Get")
	case <-time.After(50 * time.Millisecond):
	}

	v, err := ch.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("blocked Put did not complete after Get freed a slot")
	}

	v, err = ch.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestAccessors(t *testing.T) {
	ch := New[int](4)

	assert.Equal(t, 4, ch.Cap())
	assert.Equal(t, 0, ch.Len())
	assert.True(t, ch.IsEmpty())
	assert.False(t, ch.IsFull())
	assert.False(t, ch.IsClosed())
	assert.True(t, ch.IsBuffered())

	for i := 0; i < 4; i++ {
		require.NoError(t, ch.Put(i))
	}
	assert.Equal(t, 4, ch.Len())
	assert.False(t, ch.IsEmpty())
	assert.True(t, ch.IsFull())
}

func TestIsBuffered_RendezvousIsNot(t *testing.T) {
	assert.False(t, New[int](1).IsBuffered())
	assert.True(t, New[int](2).IsBuffered())
}

func TestValueDeliveredExactlyOnce(t *testing.T) {
	ch := New[int](16)
	const n = 1000

	go func() {
		for i := 0; i < n; i++ {
			_ = ch.Put(i)
		}
		ch.Close()
	}()

	var mu sync.Mutex
	seen := make(map[int]int)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, err := ch.Get()
				if err != nil {
					return
				}
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
	for v, count := range seen {
		assert.Equal(t, 1, count, "value %d consumed %d times", v, count)
	}
}
