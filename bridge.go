package bchan

import "context"

// Drain removes and discards all buffered values, returning how many
// were dropped. It wakes blocked producers (unless the channel is
// closed, in which case they have already failed). Use this to release
// values held by a channel during shutdown.
func Drain[T any](c *Chan[T]) int {
	c.mu.Lock()
	n := c.count
	clear(c.buf)
	c.out = c.in
	c.count = 0
	c.mu.Unlock()

	c.space.Broadcast()
	return n
}

// ToChan bridges the channel to a native receive channel. The returned
// channel yields values until the Chan is closed and drained or ctx is
// cancelled, then is closed.
//
// The internal goroutine exits promptly on cancellation, preventing leaks.
func (c *Chan[T]) ToChan(ctx context.Context) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			v, err := c.GetContext(ctx)
			if err != nil {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Feed pumps values from a native channel into c until in is closed
// (returns nil), ctx is cancelled (returns ctx.Err()), or c is closed
// (returns [ErrClosed]).
func (c *Chan[T]) Feed(ctx context.Context, in <-chan T) error {
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return nil
			}
			if err := c.PutContext(ctx, v); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
