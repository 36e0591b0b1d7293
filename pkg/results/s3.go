package results

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/athena"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/ogsdata/dashgen/pkg/models"
)

// Downloader is the subset of the s3manager download API used to retrieve
// staged result objects. *s3manager.Downloader satisfies it.
type Downloader interface {
	DownloadWithContext(ctx aws.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*s3manager.Downloader)) (int64, error)
}

// S3Fetcher reads query results from the CSV object Athena stages at the
// execution's output location. Unlike the API path it cannot tell NULL
// cells apart from empty strings.
type S3Fetcher struct {
	downloader Downloader
}

// NewS3Fetcher creates a result fetcher backed by the staged result objects in S3.
func NewS3Fetcher(downloader Downloader) *S3Fetcher {
	return &S3Fetcher{downloader: downloader}
}

// Fetch downloads the staged CSV for the given execution and parses it into
// a ResultSet. The first record holds the column headers.
func (f *S3Fetcher) Fetch(ctx context.Context, execution *athena.QueryExecution) (*models.ResultSet, error) {
	if execution == nil || execution.QueryExecutionId == nil {
		return nil, &FetchError{Msg: "query execution has no ID"}
	}
	executionID := aws.StringValue(execution.QueryExecutionId)

	if execution.ResultConfiguration == nil || execution.ResultConfiguration.OutputLocation == nil {
		return nil, &FetchError{ExecutionID: executionID, Msg: "query execution has no output location"}
	}

	bucket, key, err := splitS3URL(aws.StringValue(execution.ResultConfiguration.OutputLocation))
	if err != nil {
		return nil, &FetchError{ExecutionID: executionID, Msg: "invalid output location", Err: err}
	}

	buf := aws.NewWriteAtBuffer(nil)
	_, err = f.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &FetchError{ExecutionID: executionID, Msg: "error downloading staged results", Err: err}
	}

	return parseCSV(executionID, buf.Bytes())
}

// parseCSV converts a staged result object into a ResultSet.
func parseCSV(executionID string, data []byte) (*models.ResultSet, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err == io.EOF {
		return &models.ResultSet{}, nil
	}
	if err != nil {
		return nil, &FetchError{ExecutionID: executionID, Msg: "error parsing staged results", Err: err}
	}

	set := &models.ResultSet{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FetchError{ExecutionID: executionID, Msg: "error parsing staged results", Err: err}
		}
		cells := make([]*string, len(record))
		for i := range record {
			cells[i] = aws.String(record[i])
		}
		set.Rows = append(set.Rows, cells)
	}
	return set, nil
}

// splitS3URL splits an s3://bucket/key URL into its bucket and key parts.
func splitS3URL(location string) (string, string, error) {
	trimmed := strings.TrimPrefix(location, "s3://")
	if trimmed == location {
		return "", "", fmt.Errorf("result location %q is not an s3:// URL", location)
	}
	bucket, key, found := strings.Cut(trimmed, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("result location %q has no object key", location)
	}
	return bucket, key, nil
}
