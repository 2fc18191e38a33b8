// Package bchan provides a bounded, closable channel primitive with
// explicit blocking, non-blocking, and shutdown semantics.
//
// Native Go channels cover most handoff needs, but their edges are
// sharp where shutdown is concerned: send on a closed channel panics,
// close of a closed channel panics, and there is no way to ask a
// channel whether it is closed. [Chan] is a mutex-and-condition
// implementation of the same bounded FIFO idea that trades a little
// raw speed for a forgiving surface: every operation returns an error
// instead of panicking, and close is idempotent.
//
// # Shape
//
// A [Chan] is constructed with a fixed capacity:
//
//	ch := bchan.New[int](8)
//
// Capacity 1 selects rendezvous semantics — each [Chan.Put] must be
// consumed before the next Put can proceed. Capacity above 1 selects
// ring-buffer semantics with up to capacity values in flight. Both
// share one code path; only the capacity differs.
//
// # Operations
//
//   - [Chan.Put] / [Chan.Get]: blocking transfer. Put suspends while
//     the channel is full, Get while it is empty and open.
//   - [Chan.TryPut] / [Chan.TryGet]: non-blocking transfer. They fail
//     fast with [ErrWouldBlock] instead of suspending — including when
//     the channel lock itself is contended.
//   - [Chan.Close]: one-way transition to the closed state. Puts fail
//     immediately with [ErrClosed]; Gets drain the remaining buffered
//     values and only then report [ErrClosed]. Blocked producers and
//     consumers are woken so neither waits forever.
//
// Values are delivered in FIFO order, each to exactly one consumer.
//
// # Cancellation
//
// Plain Put and Get wait indefinitely. [Chan.PutContext],
// [Chan.GetContext], [Chan.PutTimeout], and [Chan.GetTimeout] bound the
// wait with a context or deadline.
//
// # Bridging
//
// [Chan.ToChan] exposes a Chan as a native receive channel, and
// [Chan.Feed] pumps a native channel into a Chan. [Drain] discards
// buffered values during shutdown.
//
// # Observability
//
// [Chan.Stats] returns a snapshot of operation counters. [WithOnPut],
// [WithOnGet], and [WithOnClose] register lifecycle hooks, and
// [WithOnMetrics] emits periodic [Stats] snapshots. The
// [github.com/baxromumarov/bchan/bchanprom] subpackage exports the same
// counters as Prometheus metrics.
package bchan
