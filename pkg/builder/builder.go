// Package builder runs the registered dashboard queries and assembles their
// results into a single dashboard document.
package builder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ogsdata/dashgen/pkg/formatter"
	"github.com/ogsdata/dashgen/pkg/metrics"
	"github.com/ogsdata/dashgen/pkg/models"
)

// QueryRunner executes a single query and returns its raw results.
type QueryRunner interface {
	Execute(ctx context.Context, query *models.Query) (*models.ResultSet, error)
}

// Builder runs queries sequentially and accumulates their datasets.
type Builder struct {
	runner    QueryRunner
	emitEmpty bool
}

// New creates a builder. When emitEmpty is set, failed queries appear in the
// document as empty datasets instead of being omitted.
func New(runner QueryRunner, emitEmpty bool) *Builder {
	return &Builder{runner: runner, emitEmpty: emitEmpty}
}

// Build runs the given queries in order and collects their datasets into a
// document. A failed query is logged and left out of the document; it never
// aborts the rest of the run. The report records the outcome of every query
// that ran.
func (b *Builder) Build(ctx context.Context, queries []models.Query) (models.Document, *Report) {
	document := models.Document{}
	report := &Report{}
	collector := metrics.NewCollector()

	for i := range queries {
		if ctx.Err() != nil {
			logrus.WithError(ctx.Err()).Warn("build interrupted, skipping remaining queries")
			break
		}

		query := &queries[i]
		log := logrus.WithField("query", query.Name)
		log.Info("running query")

		start := time.Now()
		set, err := b.runner.Execute(ctx, query)
		duration := time.Since(start)
		collector.RecordQuery(duration, err)

		outcome := Outcome{Query: query.Name, Duration: duration, Err: err}
		if err != nil {
			log.WithError(err).WithField("duration", duration).Error("query failed")
			if b.emitEmpty {
				document[query.Name] = models.Dataset{}
			}
		} else {
			dataset := formatter.FormatResultSet(set)
			document[query.Name] = dataset
			outcome.Rows = len(dataset)
			log.WithFields(logrus.Fields{
				"rows":     len(dataset),
				"duration": duration,
			}).Info("query succeeded")
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Metrics = collector.Snapshot()
	return document, report
}
