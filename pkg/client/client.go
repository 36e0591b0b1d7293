// Package client provides the AWS service client implementation.
// It handles session creation and service configuration for Athena and S3.
package client

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/athena"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ClientError represents an error specifically related to AWS client operations.
type ClientError struct {
	Msg string
	Err error // Wrapped error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aws client error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("aws client error: %s", e.Msg)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// SessionFactory defines an interface for creating AWS sessions.
// This allows for dependency injection and better testing.
type SessionFactory interface {
	CreateSession(region string) (*session.Session, error)
}

// DefaultSessionFactory is the concrete implementation that uses the shared
// AWS configuration chain (environment, shared credentials and config files).
type DefaultSessionFactory struct{}

// CreateSession implements the SessionFactory interface using session.NewSessionWithOptions.
func (f *DefaultSessionFactory) CreateSession(region string) (*session.Session, error) {
	return session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Config: aws.Config{
			Region: aws.String(region),
		},
	})
}

// AWS bundles the service clients used by the dataset builder.
type AWS struct {
	Athena     *athena.Athena
	S3         *s3.S3
	Downloader *s3manager.Downloader
}

// New initializes the AWS service clients for the given region using a SessionFactory.
func New(region string, factory SessionFactory) (*AWS, error) {
	if region == "" {
		return nil, &ClientError{Msg: "AWS region cannot be empty"}
	}

	sess, err := factory.CreateSession(region)
	if err != nil {
		return nil, &ClientError{Msg: "failed to initialize AWS session", Err: err}
	}

	return &AWS{
		Athena:     athena.New(sess),
		S3:         s3.New(sess),
		Downloader: s3manager.NewDownloader(sess),
	}, nil
}
