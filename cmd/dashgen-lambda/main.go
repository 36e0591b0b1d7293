// The dashgen-lambda binary runs the dataset build inside AWS Lambda,
// typically on a schedule, and publishes the document straight to S3.
package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/ogsdata/dashgen/pkg/builder"
	"github.com/ogsdata/dashgen/pkg/client"
	"github.com/ogsdata/dashgen/pkg/config"
	"github.com/ogsdata/dashgen/pkg/constant"
	"github.com/ogsdata/dashgen/pkg/executor"
	"github.com/ogsdata/dashgen/pkg/models"
	"github.com/ogsdata/dashgen/pkg/publisher"
	"github.com/ogsdata/dashgen/pkg/queries"
	"github.com/ogsdata/dashgen/pkg/results"
	"github.com/ogsdata/dashgen/pkg/validation"
)

// Request optionally overrides the configured upload target.
type Request struct {
	Bucket string `json:"bucket,omitempty"`
	Key    string `json:"key,omitempty"`
}

// Response reports what the build produced.
type Response struct {
	Datasets int      `json:"datasets"`
	Failed   []string `json:"failed,omitempty"`
	Location string   `json:"location"`
}

func handleRequest(ctx context.Context, req Request) (*Response, error) {
	settings, err := config.Load("")
	if err != nil {
		return nil, err
	}

	if req.Bucket != "" {
		settings.UploadBucket = req.Bucket
	}

	if req.Key != "" {
		settings.UploadKey = req.Key
	}

	if settings.UploadBucket == "" {
		return nil, fmt.Errorf("no upload bucket configured")
	}

	err = validation.ValidateSettings(settings)
	if err != nil {
		return nil, err
	}

	clients, err := client.New(settings.Region, &client.DefaultSessionFactory{})
	if err != nil {
		return nil, err
	}

	var fetcher executor.ResultFetcher
	switch settings.FetchMode {
	case constant.FetchModeS3:
		fetcher = results.NewS3Fetcher(clients.Downloader)
	default:
		fetcher = results.NewAPIFetcher(clients.Athena)
	}

	runner := executor.New(clients.Athena, fetcher, settings)
	document, report := builder.New(runner, settings.EmitEmptyDatasets).Build(ctx, queries.All())

	data, err := models.EncodeDocument(document)
	if err != nil {
		return nil, err
	}

	err = publisher.New(clients.S3).Publish(ctx, settings.UploadBucket, settings.UploadKey, data)
	if err != nil {
		return nil, err
	}

	location := fmt.Sprintf("s3://%s/%s", settings.UploadBucket, settings.UploadKey)
	logrus.WithFields(logrus.Fields{
		"location": location,
		"datasets": len(document),
	}).Info("dashboard document published")

	return &Response{
		Datasets: len(document),
		Failed:   report.FailedQueries(),
		Location: location,
	}, nil
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	lambda.Start(handleRequest)
}
