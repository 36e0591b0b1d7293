package publisher

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPutAPI implements the PutAPI interface for testing
type MockPutAPI struct {
	err   error
	input *s3.PutObjectInput
}

func (m *MockPutAPI) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	m.input = input
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestPublisher_Publish(t *testing.T) {
	api := &MockPutAPI{}
	body := []byte(`{"kpis": []}` + "\n")

	err := New(api).Publish(context.Background(), "analytics-dashboard", "data/dashboard-data.json", body)

	require.NoError(t, err)
	require.NotNil(t, api.input)
	assert.Equal(t, "analytics-dashboard", aws.StringValue(api.input.Bucket))
	assert.Equal(t, "data/dashboard-data.json", aws.StringValue(api.input.Key))
	assert.Equal(t, "application/json", aws.StringValue(api.input.ContentType))

	uploaded, err := io.ReadAll(api.input.Body)
	require.NoError(t, err)
	assert.Equal(t, body, uploaded)
}

func TestPublisher_Publish_Errors(t *testing.T) {
	tests := []struct {
		name      string
		publisher *Publisher
		bucket    string
		key       string
		errMsg    string
	}{
		{
			name:      "nil api",
			publisher: New(nil),
			bucket:    "analytics-dashboard",
			key:       "data/dashboard-data.json",
			errMsg:    "s3 client is nil",
		},
		{
			name:      "empty bucket",
			publisher: New(&MockPutAPI{}),
			bucket:    "",
			key:       "data/dashboard-data.json",
			errMsg:    "upload bucket cannot be empty",
		},
		{
			name:      "empty key",
			publisher: New(&MockPutAPI{}),
			bucket:    "analytics-dashboard",
			key:       "",
			errMsg:    "upload key cannot be empty",
		},
		{
			name:      "upload error",
			publisher: New(&MockPutAPI{err: errors.New("access denied")}),
			bucket:    "analytics-dashboard",
			key:       "data/dashboard-data.json",
			errMsg:    "error uploading dashboard document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.publisher.Publish(context.Background(), tt.bucket, tt.key, []byte("{}"))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var publishErr *PublishError
			assert.ErrorAs(t, err, &publishErr)
		})
	}
}

func TestPublishError(t *testing.T) {
	tests := []struct {
		name     string
		err      *PublishError
		expected string
	}{
		{
			name: "with wrapped error",
			err: &PublishError{
				Bucket: "analytics-dashboard",
				Key:    "data/dashboard-data.json",
				Msg:    "test message",
				Err:    errors.New("wrapped error"),
			},
			expected: "publish error for 's3://analytics-dashboard/data/dashboard-data.json': test message: wrapped error",
		},
		{
			name: "without wrapped error",
			err: &PublishError{
				Bucket: "analytics-dashboard",
				Key:    "data/dashboard-data.json",
				Msg:    "test message",
			},
			expected: "publish error for 's3://analytics-dashboard/data/dashboard-data.json': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.err.Err, tt.err.Unwrap())
		})
	}
}
