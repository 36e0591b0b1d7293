// Package metrics tracks execution statistics for a dataset build run.
package metrics

import (
	"sync"
	"time"
)

// Metrics holds the accumulated statistics of a build run.
type Metrics struct {
	QueryCount       uint64
	ErrorCount       uint64
	TotalQueryTime   time.Duration
	AverageQueryTime time.Duration
	LastQueryTime    time.Time
}

// Collector accumulates metrics for a single build run.
// It is safe for concurrent use.
type Collector struct {
	mu sync.Mutex
	m  Metrics
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordQuery records the duration and outcome of a completed query.
func (c *Collector) RecordQuery(duration time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m.QueryCount++
	if err != nil {
		c.m.ErrorCount++
	}
	c.m.TotalQueryTime += duration
	c.m.AverageQueryTime = c.m.TotalQueryTime / time.Duration(c.m.QueryCount)
	c.m.LastQueryTime = time.Now()
}

// Snapshot returns a copy of the collected metrics.
func (c *Collector) Snapshot() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m
}
