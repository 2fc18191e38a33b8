package bchan

import "time"

// Stats provides a point-in-time snapshot of channel activity.
type Stats struct {
	Puts        int64 // values stored (Put + TryPut)
	Gets        int64 // values consumed (Get + TryGet)
	FailedTries int64 // TryPut/TryGet attempts that returned an error
	BlockedPuts int64 // Put calls that had to wait for space
	BlockedGets int64 // Get calls that had to wait for a value
	Len         int   // values currently buffered
	Cap         int   // capacity (fixed at creation)
	Closed      bool
}

// Stats returns a point-in-time snapshot of channel activity.
// Safe to call concurrently.
func (c *Chan[T]) Stats() Stats {
	c.mu.Lock()
	n, closed := c.count, c.closed
	c.mu.Unlock()

	return Stats{
		Puts:        c.puts.Load(),
		Gets:        c.gets.Load(),
		FailedTries: c.failedTries.Load(),
		BlockedPuts: c.blockedPuts.Load(),
		BlockedGets: c.blockedGets.Load(),
		Len:         n,
		Cap:         len(c.buf),
		Closed:      closed,
	}
}

// metricsLoop drives the WithOnMetrics callback until Close.
func (c *Chan[T]) metricsLoop() {
	ticker := time.NewTicker(c.cfg.metricsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cfg.onMetrics(c.Stats())
		case <-c.metricsStop:
			return
		}
	}
}
