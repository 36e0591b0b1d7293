// Package publisher uploads the generated dashboard document to S3, where
// the static dashboard reads it from.
package publisher

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
)

// PublishError represents an error while uploading the dashboard document.
type PublishError struct {
	Bucket string
	Key    string
	Msg    string
	Err    error // Wrapped error
}

func (e *PublishError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("publish error for 's3://%s/%s': %s: %v", e.Bucket, e.Key, e.Msg, e.Err)
	}
	return fmt.Sprintf("publish error for 's3://%s/%s': %s", e.Bucket, e.Key, e.Msg)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// PutAPI is the subset of the S3 API used to upload documents.
// *s3.S3 satisfies it.
type PutAPI interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// Publisher uploads dashboard documents to an S3 bucket.
type Publisher struct {
	api PutAPI
}

// New creates a publisher backed by the given S3 API.
func New(api PutAPI) *Publisher {
	return &Publisher{api: api}
}

// Publish uploads body to s3://bucket/key with a JSON content type.
func (p *Publisher) Publish(ctx context.Context, bucket, key string, body []byte) error {
	if p.api == nil {
		return &PublishError{Bucket: bucket, Key: key, Msg: "s3 client is nil, cannot publish"}
	}
	if bucket == "" {
		return &PublishError{Key: key, Msg: "upload bucket cannot be empty"}
	}
	if key == "" {
		return &PublishError{Bucket: bucket, Msg: "upload key cannot be empty"}
	}

	_, err := p.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return &PublishError{Bucket: bucket, Key: key, Msg: "error uploading dashboard document", Err: err}
	}
	return nil
}
