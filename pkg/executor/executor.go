// Package executor provides functionality for executing SQL queries against Athena.
// It handles query submission, state polling, and error handling.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/athena"
	"github.com/google/uuid"

	"github.com/ogsdata/dashgen/pkg/config"
	"github.com/ogsdata/dashgen/pkg/models"
)

// QueryAPI is the subset of the Athena API used to run a query to completion.
// *athena.Athena satisfies it.
type QueryAPI interface {
	StartQueryExecutionWithContext(ctx aws.Context, input *athena.StartQueryExecutionInput, opts ...request.Option) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecutionWithContext(ctx aws.Context, input *athena.GetQueryExecutionInput, opts ...request.Option) (*athena.GetQueryExecutionOutput, error)
}

// ResultFetcher retrieves the result rows of a completed query execution.
type ResultFetcher interface {
	Fetch(ctx context.Context, execution *athena.QueryExecution) (*models.ResultSet, error)
}

// ExecutionError represents an error during Athena query execution.
type ExecutionError struct {
	Query string
	Msg   string
	Err   error // Wrapped error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("athena query execution error for '%s': %s: %v", e.Query, e.Msg, e.Err)
	}
	return fmt.Sprintf("athena query execution error for '%s': %s", e.Query, e.Msg)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Executor handles the execution of SQL queries against Athena.
type Executor struct {
	api            QueryAPI
	fetcher        ResultFetcher
	database       string
	workgroup      string
	outputLocation string
	pollInterval   time.Duration
}

// New creates a query executor from the given API client, result fetcher and settings.
func New(api QueryAPI, fetcher ResultFetcher, settings *config.Settings) *Executor {
	return &Executor{
		api:            api,
		fetcher:        fetcher,
		database:       settings.Database,
		workgroup:      settings.Workgroup,
		outputLocation: settings.OutputLocation,
		pollInterval:   settings.PollInterval,
	}
}

// Execute runs a query against Athena and returns its results.
// It submits the query, polls until the execution reaches a terminal state,
// and fetches the result rows on success.
func (e *Executor) Execute(ctx context.Context, query *models.Query) (*models.ResultSet, error) {
	if query == nil {
		return nil, &ExecutionError{Msg: "query definition cannot be nil"}
	}
	if e.api == nil {
		return nil, &ExecutionError{Query: query.Name, Msg: "athena client is nil, cannot execute query"}
	}
	if e.fetcher == nil {
		return nil, &ExecutionError{Query: query.Name, Msg: "result fetcher is nil, cannot execute query"}
	}
	if query.SQL == "" {
		return nil, &ExecutionError{Query: query.Name, Msg: "query SQL cannot be empty"}
	}

	executionID, err := e.submit(ctx, query)
	if err != nil {
		return nil, &ExecutionError{Query: query.Name, Msg: "error submitting query to Athena", Err: err}
	}

	execution, err := e.awaitCompletion(ctx, executionID)
	if err != nil {
		return nil, &ExecutionError{Query: query.Name, Msg: "error waiting for query completion", Err: err}
	}

	if state := aws.StringValue(execution.Status.State); state != athena.QueryExecutionStateSucceeded {
		return nil, &ExecutionError{
			Query: query.Name,
			Msg:   fmt.Sprintf("query finished with state %s: %s", state, stateChangeReason(execution)),
		}
	}

	results, err := e.fetcher.Fetch(ctx, execution)
	if err != nil {
		return nil, &ExecutionError{Query: query.Name, Msg: "error fetching query results", Err: err}
	}
	return results, nil
}

// submit starts the query execution and returns its execution ID.
func (e *Executor) submit(ctx context.Context, query *models.Query) (string, error) {
	input := &athena.StartQueryExecutionInput{
		QueryString:        aws.String(query.SQL),
		ClientRequestToken: aws.String(uuid.NewString()),
		QueryExecutionContext: &athena.QueryExecutionContext{
			Database: aws.String(e.database),
		},
		ResultConfiguration: &athena.ResultConfiguration{
			OutputLocation: aws.String(e.outputLocation),
		},
	}
	if e.workgroup != "" {
		input.WorkGroup = aws.String(e.workgroup)
	}

	output, err := e.api.StartQueryExecutionWithContext(ctx, input)
	if err != nil {
		return "", err
	}
	if output.QueryExecutionId == nil {
		return "", fmt.Errorf("athena returned no query execution ID")
	}
	return aws.StringValue(output.QueryExecutionId), nil
}

// awaitCompletion polls the execution state at a fixed interval until it
// reaches a terminal state or the context is cancelled.
func (e *Executor) awaitCompletion(ctx context.Context, executionID string) (*athena.QueryExecution, error) {
	input := &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(executionID),
	}

	for {
		output, err := e.api.GetQueryExecutionWithContext(ctx, input)
		if err != nil {
			return nil, err
		}

		execution := output.QueryExecution
		if execution == nil || execution.Status == nil {
			return nil, fmt.Errorf("query execution %s reported no status", executionID)
		}

		switch aws.StringValue(execution.Status.State) {
		case athena.QueryExecutionStateSucceeded,
			athena.QueryExecutionStateFailed,
			athena.QueryExecutionStateCancelled:
			return execution, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.pollInterval):
		}
	}
}

// stateChangeReason extracts the reason Athena reported for a terminal state.
func stateChangeReason(execution *athena.QueryExecution) string {
	if reason := aws.StringValue(execution.Status.StateChangeReason); reason != "" {
		return reason
	}
	return "no state change reason reported"
}
