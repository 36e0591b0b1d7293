// Package results retrieves the rows of completed Athena query executions,
// either through the Athena API or from the CSV staged in S3.
package results

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/athena"

	"github.com/ogsdata/dashgen/pkg/models"
)

// FetchError represents an error while retrieving query results.
type FetchError struct {
	ExecutionID string
	Msg         string
	Err         error // Wrapped error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("result fetch error for execution '%s': %s: %v", e.ExecutionID, e.Msg, e.Err)
	}
	return fmt.Sprintf("result fetch error for execution '%s': %s", e.ExecutionID, e.Msg)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ResultsAPI is the subset of the Athena API used to page through query results.
// *athena.Athena satisfies it.
type ResultsAPI interface {
	GetQueryResultsPagesWithContext(ctx aws.Context, input *athena.GetQueryResultsInput, fn func(*athena.GetQueryResultsOutput, bool) bool, opts ...request.Option) error
}

// APIFetcher reads query results through the Athena GetQueryResults API.
type APIFetcher struct {
	api ResultsAPI
}

// NewAPIFetcher creates a result fetcher backed by the Athena results API.
func NewAPIFetcher(api ResultsAPI) *APIFetcher {
	return &APIFetcher{api: api}
}

// Fetch pages through the results of the given execution and collects them
// into a ResultSet. The first row of the first page repeats the column
// headers and is skipped.
func (f *APIFetcher) Fetch(ctx context.Context, execution *athena.QueryExecution) (*models.ResultSet, error) {
	if execution == nil || execution.QueryExecutionId == nil {
		return nil, &FetchError{Msg: "query execution has no ID"}
	}
	executionID := aws.StringValue(execution.QueryExecutionId)

	input := &athena.GetQueryResultsInput{
		QueryExecutionId: execution.QueryExecutionId,
	}

	set := &models.ResultSet{}
	firstPage := true
	err := f.api.GetQueryResultsPagesWithContext(ctx, input, func(page *athena.GetQueryResultsOutput, lastPage bool) bool {
		if page == nil || page.ResultSet == nil {
			return false
		}
		rows := page.ResultSet.Rows
		if firstPage {
			set.Columns = columnLabels(page.ResultSet.ResultSetMetadata)
			if len(rows) > 0 {
				rows = rows[1:]
			}
			firstPage = false
		}
		for _, row := range rows {
			set.Rows = append(set.Rows, cellValues(row))
		}
		return true
	})
	if err != nil {
		return nil, &FetchError{ExecutionID: executionID, Msg: "error reading results from Athena", Err: err}
	}
	return set, nil
}

// columnLabels extracts the column names from result metadata, preferring
// the projected label over the underlying column name.
func columnLabels(metadata *athena.ResultSetMetadata) []string {
	if metadata == nil {
		return nil
	}
	labels := make([]string, 0, len(metadata.ColumnInfo))
	for _, info := range metadata.ColumnInfo {
		label := aws.StringValue(info.Label)
		if label == "" {
			label = aws.StringValue(info.Name)
		}
		labels = append(labels, label)
	}
	return labels
}

// cellValues flattens a result row into its raw cell values. NULL cells
// stay nil.
func cellValues(row *athena.Row) []*string {
	if row == nil {
		return nil
	}
	cells := make([]*string, len(row.Data))
	for i, datum := range row.Data {
		if datum != nil {
			cells[i] = datum.VarCharValue
		}
	}
	return cells
}
