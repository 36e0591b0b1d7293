package builder

import (
	"time"

	"github.com/ogsdata/dashgen/pkg/metrics"
)

// Outcome records how a single query fared during a build.
type Outcome struct {
	Query    string
	Rows     int
	Duration time.Duration
	Err      error
}

// Succeeded reports whether the query produced a dataset.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Report summarizes a build run.
type Report struct {
	Outcomes []Outcome
	Metrics  metrics.Metrics
}

// Failed reports whether any query in the run failed.
func (r *Report) Failed() bool {
	for _, outcome := range r.Outcomes {
		if !outcome.Succeeded() {
			return true
		}
	}
	return false
}

// FailedQueries returns the names of the failed queries in run order.
func (r *Report) FailedQueries() []string {
	var names []string
	for _, outcome := range r.Outcomes {
		if !outcome.Succeeded() {
			names = append(names, outcome.Query)
		}
	}
	return names
}
