package client

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/assert"
)

// MockSessionFactory implements the SessionFactory interface for testing
type MockSessionFactory struct {
	shouldFail bool
	err        error
	region     string
}

func (m *MockSessionFactory) CreateSession(region string) (*session.Session, error) {
	m.region = region
	if m.shouldFail {
		return nil, m.err
	}
	return session.Must(session.NewSession()), nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		region    string
		factory   *MockSessionFactory
		expectErr bool
		errMsg    string
	}{
		{
			name:      "success",
			region:    "us-east-1",
			factory:   &MockSessionFactory{},
			expectErr: false,
		},
		{
			name:      "empty region",
			region:    "",
			factory:   &MockSessionFactory{},
			expectErr: true,
			errMsg:    "AWS region cannot be empty",
		},
		{
			name:      "session creation error",
			region:    "us-east-1",
			factory:   &MockSessionFactory{shouldFail: true, err: errors.New("factory error")},
			expectErr: true,
			errMsg:    "failed to initialize AWS session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients, err := New(tt.region, tt.factory)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, clients)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.region, tt.factory.region)
				assert.NotNil(t, clients.Athena)
				assert.NotNil(t, clients.S3)
				assert.NotNil(t, clients.Downloader)
			}
		})
	}
}

func TestClientError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClientError
		expected string
	}{
		{
			name: "with wrapped error",
			err: &ClientError{
				Msg: "test message",
				Err: errors.New("wrapped error"),
			},
			expected: "aws client error: test message: wrapped error",
		},
		{
			name: "without wrapped error",
			err: &ClientError{
				Msg: "test message",
			},
			expected: "aws client error: test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.err.Err, tt.err.Unwrap())
		})
	}
}

func TestDefaultSessionFactory(t *testing.T) {
	factory := &DefaultSessionFactory{}

	sess, err := factory.CreateSession("us-east-1")
	assert.NoError(t, err)
	assert.NotNil(t, sess)
	assert.Equal(t, "us-east-1", *sess.Config.Region)
}
