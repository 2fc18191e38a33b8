// Package bchanprom exports bchan channel counters as Prometheus metrics.
//
// Register channels under a name, then register the collector with a
// prometheus.Registerer:
//
//	col := bchanprom.NewCollector()
//	col.Register("ingest", ch)
//	prometheus.MustRegister(col)
package bchanprom

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/baxromumarov/bchan"
)

// ErrDuplicateName is returned by [Collector.Register] when a channel is
// already registered under the given name.
var ErrDuplicateName = errors.New("bchanprom: channel name already registered")

// Source is the stats surface the collector scrapes. Every
// bchan.Chan[T] satisfies it regardless of its type parameter.
type Source interface {
	Stats() bchan.Stats
}

// Collector implements prometheus.Collector over a set of named channels.
// It is safe for concurrent use.
type Collector struct {
	mu      sync.RWMutex
	sources map[string]Source

	depth       *prometheus.Desc
	capacity    *prometheus.Desc
	closed      *prometheus.Desc
	puts        *prometheus.Desc
	gets        *prometheus.Desc
	failedTries *prometheus.Desc
	blockedPuts *prometheus.Desc
	blockedGets *prometheus.Desc
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	label := []string{"channel"}
	return &Collector{
		sources: make(map[string]Source),
		depth: prometheus.NewDesc(
			"bchan_depth", "Number of values currently buffered.", label, nil),
		capacity: prometheus.NewDesc(
			"bchan_capacity", "Channel capacity, fixed at creation.", label, nil),
		closed: prometheus.NewDesc(
			"bchan_closed", "1 if the channel is closed, 0 otherwise.", label, nil),
		puts: prometheus.NewDesc(
			"bchan_puts_total", "Values stored via Put and TryPut.", label, nil),
		gets: prometheus.NewDesc(
			"bchan_gets_total", "Values consumed via Get and TryGet.", label, nil),
		failedTries: prometheus.NewDesc(
			"bchan_failed_tries_total", "Non-blocking attempts that returned an error.", label, nil),
		blockedPuts: prometheus.NewDesc(
			"bchan_blocked_puts_total", "Put calls that had to wait for space.", label, nil),
		blockedGets: prometheus.NewDesc(
			"bchan_blocked_gets_total", "Get calls that had to wait for a value.", label, nil),
	}
}

// Register adds a channel under the given name.
// Returns [ErrDuplicateName] if the name is taken.
func (c *Collector) Register(name string, s Source) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sources[name]; ok {
		return ErrDuplicateName
	}
	c.sources[name] = s
	return nil
}

// Unregister removes the channel registered under name, if any.
func (c *Collector) Unregister(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.depth
	ch <- c.capacity
	ch <- c.closed
	ch <- c.puts
	ch <- c.gets
	ch <- c.failedTries
	ch <- c.blockedPuts
	ch <- c.blockedGets
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(out chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for name, s := range c.sources {
		st := s.Stats()

		closed := 0.0
		if st.Closed {
			closed = 1.0
		}

		out <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(st.Len), name)
		out <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Cap), name)
		out <- prometheus.MustNewConstMetric(c.closed, prometheus.GaugeValue, closed, name)
		out <- prometheus.MustNewConstMetric(c.puts, prometheus.CounterValue, float64(st.Puts), name)
		out <- prometheus.MustNewConstMetric(c.gets, prometheus.CounterValue, float64(st.Gets), name)
		out <- prometheus.MustNewConstMetric(c.failedTries, prometheus.CounterValue, float64(st.FailedTries), name)
		out <- prometheus.MustNewConstMetric(c.blockedPuts, prometheus.CounterValue, float64(st.BlockedPuts), name)
		out <- prometheus.MustNewConstMetric(c.blockedGets, prometheus.CounterValue, float64(st.BlockedGets), name)
	}
}
