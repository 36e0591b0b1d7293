// Package health verifies connectivity to Athena before a build runs.
package health

import (
	"context"
	"fmt"

	"github.com/ogsdata/dashgen/pkg/models"
)

// Status describes the outcome of a health check.
type Status int

const (
	// StatusOk means the connectivity probe succeeded.
	StatusOk Status = iota
	// StatusError means the probe failed.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "OK"
	case StatusError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Result carries the status of a health check and a human-readable message.
type Result struct {
	Status  Status
	Message string
}

// QueryRunner executes a single query. It matches the builder's runner
// interface so a configured executor can serve both.
type QueryRunner interface {
	Execute(ctx context.Context, query *models.Query) (*models.ResultSet, error)
}

// probe is the trivial query used to verify connectivity end to end.
var probe = models.Query{
	Name: "health_check",
	SQL:  "SELECT 1",
}

// Check runs a trivial query through the runner to verify that Athena is
// reachable and the configuration works.
func Check(ctx context.Context, runner QueryRunner) *Result {
	if runner == nil {
		return &Result{
			Status:  StatusError,
			Message: "Query runner is not initialized for health check.",
		}
	}

	query := probe
	if _, err := runner.Execute(ctx, &query); err != nil {
		return &Result{
			Status:  StatusError,
			Message: fmt.Sprintf("Failed to connect to Athena. Error: %v", err),
		}
	}

	return &Result{
		Status:  StatusOk,
		Message: "Successfully connected to Athena.",
	}
}
