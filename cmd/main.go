// A quick driver workload: many one-shot producers and consumers racing
// over a single buffered channel, with non-blocking reads falling back
// to blocking ones. Useful for eyeballing throughput and contention.
package main

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/baxromumarov/bchan"
)

const (
	bufSize      = 1000
	numProducers = 1000
	numConsumers = 1000
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ch := bchan.New[string](bufSize)
	var failedReads atomic.Int64

	start := time.Now()

	var g errgroup.Group
	for i := 0; i < numProducers; i++ {
		g.Go(func() error {
			return ch.Put("hello!")
		})
	}
	for i := 0; i < numConsumers; i++ {
		g.Go(func() error {
			// Try the fast path first; fall back to a blocking read.
			if _, err := ch.TryGet(); err != nil {
				failedReads.Add(1)
				if _, err := ch.Get(); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("workload failed")
	}

	stats := ch.Stats()
	log.WithFields(logrus.Fields{
		"buf_size":     bufSize,
		"producers":    numProducers,
		"consumers":    numConsumers,
		"elapsed":      time.Since(start).Round(time.Microsecond),
		"failed_reads": failedReads.Load(),
		"puts":         stats.Puts,
		"gets":         stats.Gets,
		"blocked_puts": stats.BlockedPuts,
		"blocked_gets": stats.BlockedGets,
	}).Info("workload complete")

	ch.Close()
}
