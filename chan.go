package bchan

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by [Chan.Put] and [Chan.TryPut] when the channel
// has been closed, and by [Chan.Get] and [Chan.TryGet] once a closed
// channel has no buffered values left.
var ErrClosed = errors.New("bchan: channel is closed")

// ErrWouldBlock is returned by [Chan.TryPut] and [Chan.TryGet] when the
// operation cannot complete immediately: the channel's lock is contended,
// the buffer is full (TryPut), or the buffer is empty (TryGet). It is a
// transient condition; the operation is safe to retry.
var ErrWouldBlock = errors.New("bchan: operation would block")

// Chan is a bounded channel: a fixed-capacity FIFO handoff between any
// number of producer and consumer goroutines.
//
// Capacity is fixed at construction. A capacity of 1 gives rendezvous
// semantics: each Put must be consumed before the next Put can proceed.
// A capacity greater than 1 gives ring-buffer semantics with up to
// capacity values in flight. Both run through the same code path; the
// capacity is the only difference.
//
// A Chan must not be copied after first use. Share one instance by
// pointer among all producers and consumers.
type Chan[T any] struct {
	mu    sync.Mutex
	space sync.Cond // signaled when a slot frees up
	data  sync.Cond // signaled when a value arrives

	buf    []T
	in     int // next slot to write, mod cap
	out    int // next slot to read, mod cap
	count  int // occupied slots, 0 <= count <= cap
	closed bool

	cfg config

	// Observability counters.
	puts        atomic.Int64
	gets        atomic.Int64
	failedTries atomic.Int64
	blockedPuts atomic.Int64
	blockedGets atomic.Int64

	metricsStop chan struct{}
}

// New creates a channel with the given capacity.
// Panics if capacity < 1.
func New[T any](capacity int, opts ...Option) *Chan[T] {
	if capacity < 1 {
		panic("bchan: New requires capacity >= 1")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Chan[T]{
		buf: make([]T, capacity),
		cfg: cfg,
	}
	c.space.L = &c.mu
	c.data.L = &c.mu

	if cfg.onMetrics != nil {
		c.metricsStop = make(chan struct{})
		go c.metricsLoop()
	}

	return c
}

// Put stores v in the channel. It blocks while the channel is full and
// returns once the value is stored; it does not wait for the value to be
// consumed. Returns [ErrClosed] if the channel is closed, including when
// Close is called while Put is blocked.
func (c *Chan[T]) Put(v T) error {
	return c.put(nil, v)
}

// put implements Put and PutContext. done is nil for the plain blocking
// variant; a non-nil done is polled in the predicate loop after a wakeup
// (the ctx watcher broadcasts both conditions, see context.go).
func (c *Chan[T]) put(done func() error, v T) error {
	c.mu.Lock()
	blocked := false
	for {
		if c.closed {
			c.mu.Unlock()
			return ErrClosed
		}
		if done != nil {
			if err := done(); err != nil {
				c.mu.Unlock()
				return err
			}
		}
		if c.count < len(c.buf) {
			break
		}
		if !blocked {
			blocked = true
			c.blockedPuts.Add(1)
		}
		c.space.Wait()
	}

	c.buf[c.in] = v
	c.in = (c.in + 1) % len(c.buf)
	c.count++
	n := c.count
	c.mu.Unlock()

	// Broadcast rather than signal: with multiple waiting consumers a
	// single signal can land on a waiter that is about to give up
	// (context cancellation), losing the wakeup.
	c.data.Broadcast()

	c.puts.Add(1)
	if c.cfg.onPut != nil {
		c.cfg.onPut(n)
	}
	return nil
}

// Get removes and returns the oldest value in the channel. It blocks
// while the channel is empty and open. Once the channel is closed, Get
// keeps returning buffered values in FIFO order until the buffer is
// drained, then returns [ErrClosed].
func (c *Chan[T]) Get() (T, error) {
	return c.get(nil)
}

func (c *Chan[T]) get(done func() error) (T, error) {
	var zero T

	c.mu.Lock()
	blocked := false
	for c.count == 0 {
		if c.closed {
			c.mu.Unlock()
			return zero, ErrClosed
		}
		if done != nil {
			if err := done(); err != nil {
				c.mu.Unlock()
				return zero, err
			}
		}
		if !blocked {
			blocked = true
			c.blockedGets.Add(1)
		}
		c.data.Wait()
	}

	v := c.take()
	n := c.count
	c.mu.Unlock()

	c.space.Broadcast()

	c.gets.Add(1)
	if c.cfg.onGet != nil {
		c.cfg.onGet(n)
	}
	return v, nil
}

// take reads the slot at the read cursor and advances it.
// Caller must hold c.mu and have checked count > 0.
func (c *Chan[T]) take() T {
	v := c.buf[c.out]
	var zero T
	c.buf[c.out] = zero // release the reference; the value moves to the caller
	c.out = (c.out + 1) % len(c.buf)
	c.count--
	return v
}

// TryGet makes a non-blocking attempt to get a value off the channel.
// The lock acquisition itself does not block: if the lock is contended,
// TryGet fails immediately with [ErrWouldBlock]. It also returns
// [ErrWouldBlock] if the channel is empty and open, and [ErrClosed] if
// the channel is closed and drained. A closed channel with buffered
// values still yields them.
func (c *Chan[T]) TryGet() (T, error) {
	var zero T

	if !c.mu.TryLock() {
		c.failedTries.Add(1)
		return zero, ErrWouldBlock
	}

	if c.count == 0 {
		closed := c.closed
		c.mu.Unlock()
		c.failedTries.Add(1)
		if closed {
			return zero, ErrClosed
		}
		return zero, ErrWouldBlock
	}

	v := c.take()
	n := c.count
	c.mu.Unlock()

	c.space.Broadcast()

	c.gets.Add(1)
	if c.cfg.onGet != nil {
		c.cfg.onGet(n)
	}
	return v, nil
}

// TryPut makes a non-blocking attempt to store v. It returns
// [ErrWouldBlock] if the lock is contended or the channel is full, and
// [ErrClosed] if the channel is closed.
func (c *Chan[T]) TryPut(v T) error {
	if !c.mu.TryLock() {
		c.failedTries.Add(1)
		return ErrWouldBlock
	}

	if c.closed {
		c.mu.Unlock()
		c.failedTries.Add(1)
		return ErrClosed
	}
	if c.count == len(c.buf) {
		c.mu.Unlock()
		c.failedTries.Add(1)
		return ErrWouldBlock
	}

	c.buf[c.in] = v
	c.in = (c.in + 1) % len(c.buf)
	c.count++
	n := c.count
	c.mu.Unlock()

	c.data.Broadcast()

	c.puts.Add(1)
	if c.cfg.onPut != nil {
		c.cfg.onPut(n)
	}
	return nil
}

// Close transitions the channel to the closed state. After Close, every
// Put fails with [ErrClosed] regardless of free space, while Get and
// TryGet keep draining buffered values before reporting [ErrClosed].
//
// Close wakes all blocked producers and consumers so they observe the
// new state. Closing an already-closed channel is a no-op.
func (c *Chan[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	remaining := c.count
	c.mu.Unlock()

	// Producers must wake to fail; consumers must wake to re-check the
	// closed-and-empty drain predicate.
	c.space.Broadcast()
	c.data.Broadcast()

	if c.metricsStop != nil {
		close(c.metricsStop)
	}
	if c.cfg.onClose != nil {
		c.cfg.onClose(remaining)
	}
}

// Cap returns the channel's capacity, fixed at construction.
func (c *Chan[T]) Cap() int {
	return len(c.buf)
}

// Len returns the number of buffered values.
// The value may be stale in concurrent contexts.
func (c *Chan[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// IsEmpty reports whether the channel holds no values.
func (c *Chan[T]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count == 0
}

// IsFull reports whether the channel is at capacity.
func (c *Chan[T]) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count == len(c.buf)
}

// IsClosed reports whether Close has been called.
func (c *Chan[T]) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// IsBuffered reports whether the channel queues values (capacity > 1).
// A capacity-1 channel is a rendezvous: each Put must be consumed before
// the next Put proceeds.
func (c *Chan[T]) IsBuffered() bool {
	return len(c.buf) > 1
}

// wakeAll broadcasts both conditions. Used by the context watcher so
// cancelled waiters re-check their predicate.
func (c *Chan[T]) wakeAll() {
	c.mu.Lock()
	c.space.Broadcast()
	c.data.Broadcast()
	c.mu.Unlock()
}
