package results

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/athena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockResultsAPI implements the ResultsAPI interface for testing
type MockResultsAPI struct {
	pages []*athena.GetQueryResultsOutput
	err   error
	input *athena.GetQueryResultsInput
}

func (m *MockResultsAPI) GetQueryResultsPagesWithContext(ctx aws.Context, input *athena.GetQueryResultsInput, fn func(*athena.GetQueryResultsOutput, bool) bool, opts ...request.Option) error {
	m.input = input
	if m.err != nil {
		return m.err
	}
	for i, page := range m.pages {
		if !fn(page, i == len(m.pages)-1) {
			break
		}
	}
	return nil
}

func resultRow(values ...*string) *athena.Row {
	data := make([]*athena.Datum, len(values))
	for i, v := range values {
		data[i] = &athena.Datum{VarCharValue: v}
	}
	return &athena.Row{Data: data}
}

func metadata(labels ...string) *athena.ResultSetMetadata {
	info := make([]*athena.ColumnInfo, len(labels))
	for i, label := range labels {
		info[i] = &athena.ColumnInfo{Label: aws.String(label)}
	}
	return &athena.ResultSetMetadata{ColumnInfo: info}
}

func succeededExecution() *athena.QueryExecution {
	return &athena.QueryExecution{QueryExecutionId: aws.String("execution-1")}
}

func TestAPIFetcher_Fetch(t *testing.T) {
	api := &MockResultsAPI{
		pages: []*athena.GetQueryResultsOutput{
			{
				ResultSet: &athena.ResultSet{
					ResultSetMetadata: metadata("country", "total_revenue"),
					Rows: []*athena.Row{
						resultRow(aws.String("country"), aws.String("total_revenue")),
						resultRow(aws.String("United Kingdom"), aws.String("8187806.36")),
						resultRow(aws.String("Netherlands"), nil),
					},
				},
			},
		},
	}

	set, err := NewAPIFetcher(api).Fetch(context.Background(), succeededExecution())

	require.NoError(t, err)
	assert.Equal(t, []string{"country", "total_revenue"}, set.Columns)
	require.Equal(t, 2, set.RowCount())
	assert.Equal(t, "United Kingdom", aws.StringValue(set.Rows[0][0]))
	assert.Equal(t, "8187806.36", aws.StringValue(set.Rows[0][1]))
	assert.Equal(t, "Netherlands", aws.StringValue(set.Rows[1][0]))
	assert.Nil(t, set.Rows[1][1])
	assert.Equal(t, "execution-1", aws.StringValue(api.input.QueryExecutionId))
}

func TestAPIFetcher_Fetch_MultiplePages(t *testing.T) {
	api := &MockResultsAPI{
		pages: []*athena.GetQueryResultsOutput{
			{
				ResultSet: &athena.ResultSet{
					ResultSetMetadata: metadata("month"),
					Rows: []*athena.Row{
						resultRow(aws.String("month")),
						resultRow(aws.String("2010-12")),
					},
				},
			},
			{
				// Header row appears on the first page only.
				ResultSet: &athena.ResultSet{
					Rows: []*athena.Row{
						resultRow(aws.String("2011-01")),
						resultRow(aws.String("2011-02")),
					},
				},
			},
		},
	}

	set, err := NewAPIFetcher(api).Fetch(context.Background(), succeededExecution())

	require.NoError(t, err)
	assert.Equal(t, []string{"month"}, set.Columns)
	require.Equal(t, 3, set.RowCount())
	assert.Equal(t, "2010-12", aws.StringValue(set.Rows[0][0]))
	assert.Equal(t, "2011-01", aws.StringValue(set.Rows[1][0]))
	assert.Equal(t, "2011-02", aws.StringValue(set.Rows[2][0]))
}

func TestAPIFetcher_Fetch_LabelFallsBackToName(t *testing.T) {
	api := &MockResultsAPI{
		pages: []*athena.GetQueryResultsOutput{
			{
				ResultSet: &athena.ResultSet{
					ResultSetMetadata: &athena.ResultSetMetadata{
						ColumnInfo: []*athena.ColumnInfo{
							{Name: aws.String("invoice_no")},
						},
					},
					Rows: []*athena.Row{
						resultRow(aws.String("invoice_no")),
					},
				},
			},
		},
	}

	set, err := NewAPIFetcher(api).Fetch(context.Background(), succeededExecution())

	require.NoError(t, err)
	assert.Equal(t, []string{"invoice_no"}, set.Columns)
	assert.Equal(t, 0, set.RowCount())
}

func TestAPIFetcher_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name      string
		api       *MockResultsAPI
		execution *athena.QueryExecution
		errMsg    string
	}{
		{
			name:      "nil execution",
			api:       &MockResultsAPI{},
			execution: nil,
			errMsg:    "query execution has no ID",
		},
		{
			name:      "missing execution ID",
			api:       &MockResultsAPI{},
			execution: &athena.QueryExecution{},
			errMsg:    "query execution has no ID",
		},
		{
			name:      "API error",
			api:       &MockResultsAPI{err: errors.New("results expired")},
			execution: succeededExecution(),
			errMsg:    "error reading results from Athena",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewAPIFetcher(tt.api).Fetch(context.Background(), tt.execution)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, set)

			var fetchErr *FetchError
			assert.ErrorAs(t, err, &fetchErr)
		})
	}
}

func TestFetchError(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name: "with wrapped error",
			err: &FetchError{
				ExecutionID: "execution-1",
				Msg:         "test message",
				Err:         errors.New("wrapped error"),
			},
			expected: "result fetch error for execution 'execution-1': test message: wrapped error",
		},
		{
			name: "without wrapped error",
			err: &FetchError{
				ExecutionID: "execution-1",
				Msg:         "test message",
			},
			expected: "result fetch error for execution 'execution-1': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.err.Err, tt.err.Unwrap())
		})
	}
}
