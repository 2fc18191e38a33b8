package bchan

import (
	"context"
	"time"
)

// PutContext is [Chan.Put] with cancellation: it unblocks and returns
// ctx.Err() if ctx is done before space becomes available. A closed
// channel still fails with [ErrClosed], checked before the context.
func (c *Chan[T]) PutContext(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Wake waiters when ctx fires; the predicate loop re-checks ctx.Err().
	stop := context.AfterFunc(ctx, c.wakeAll)
	defer stop()
	return c.put(ctx.Err, v)
}

// GetContext is [Chan.Get] with cancellation: it unblocks and returns
// ctx.Err() if ctx is done before a value arrives. Drain semantics are
// unchanged: a closed channel yields its buffered values first.
func (c *Chan[T]) GetContext(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	stop := context.AfterFunc(ctx, c.wakeAll)
	defer stop()
	return c.get(ctx.Err)
}

// PutTimeout is [Chan.Put] with a deadline. It returns
// [context.DeadlineExceeded] if no space opens within d.
func (c *Chan[T]) PutTimeout(v T, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return c.PutContext(ctx, v)
}

// GetTimeout is [Chan.Get] with a deadline. It returns
// [context.DeadlineExceeded] if no value arrives within d.
func (c *Chan[T]) GetTimeout(d time.Duration) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return c.GetContext(ctx)
}
