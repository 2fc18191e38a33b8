package bchan

import "time"

type config struct {
	onPut   func(n int)
	onGet   func(n int)
	onClose func(remaining int)

	onMetrics       func(Stats)
	metricsInterval time.Duration
}

// Option configures a [Chan].
type Option func(*config)

func defaultConfig() config {
	return config{}
}

// WithOnPut registers a hook invoked after each successful Put or TryPut.
// The hook receives the number of buffered values after the operation.
// It runs in the producer's goroutine, outside the channel lock.
func WithOnPut(fn func(n int)) Option {
	return func(c *config) {
		c.onPut = fn
	}
}

// WithOnGet registers a hook invoked after each successful Get or TryGet.
// The hook receives the number of buffered values after the operation.
// It runs in the consumer's goroutine, outside the channel lock.
func WithOnGet(fn func(n int)) Option {
	return func(c *config) {
		c.onGet = fn
	}
}

// WithOnClose registers a hook invoked once when the channel is closed.
// The hook receives the number of values still buffered at close time.
func WithOnClose(fn func(remaining int)) Option {
	return func(c *config) {
		c.onClose = fn
	}
}

// WithOnMetrics registers a periodic metrics callback that fires every
// interval until the channel is closed. The callback receives a snapshot
// of current channel counters.
//
// Panics if interval <= 0 or fn is nil.
func WithOnMetrics(interval time.Duration, fn func(Stats)) Option {
	if interval <= 0 {
		panic("bchan: WithOnMetrics requires interval > 0")
	}
	if fn == nil {
		panic("bchan: WithOnMetrics requires non-nil callback")
	}
	return func(c *config) {
		c.onMetrics = fn
		c.metricsInterval = interval
	}
}
