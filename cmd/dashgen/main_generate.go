package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ogsdata/dashgen/pkg/builder"
	"github.com/ogsdata/dashgen/pkg/publisher"
	"github.com/ogsdata/dashgen/pkg/queries"
)

type cmdGenerate struct {
	global *cmdGlobal

	flagOutput string
	flagUpload bool
}

func (c *cmdGenerate) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "generate"
	cmd.Short = "Run all queries and write the dashboard document"
	cmd.RunE = c.run
	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Write the document to this path instead of the configured one")
	cmd.Flags().BoolVar(&c.flagUpload, "upload", false, "Upload the document to the configured S3 bucket after writing")

	return cmd
}

func (c *cmdGenerate) run(cmd *cobra.Command, args []string) error {
	settings, err := c.global.settings()
	if err != nil {
		return err
	}

	if c.flagOutput != "" {
		settings.OutputFile = c.flagOutput
	}

	if c.flagUpload && settings.UploadBucket == "" {
		return fmt.Errorf("upload requested but no upload bucket is configured")
	}

	runner, clients, err := c.global.runner(settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	document, report := builder.New(runner, settings.EmitEmptyDatasets).Build(ctx, queries.All())

	err = builder.WriteDocument(settings.OutputFile, document)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"path":     settings.OutputFile,
		"datasets": len(document),
	}).Info("dashboard document written")

	if c.flagUpload {
		data, err := os.ReadFile(settings.OutputFile)
		if err != nil {
			return err
		}

		err = publisher.New(clients.S3).Publish(ctx, settings.UploadBucket, settings.UploadKey, data)
		if err != nil {
			return err
		}

		logrus.WithField("location", fmt.Sprintf("s3://%s/%s", settings.UploadBucket, settings.UploadKey)).Info("dashboard document uploaded")
	}

	printReport(report)

	if failed := report.FailedQueries(); len(failed) > 0 {
		logrus.WithField("queries", strings.Join(failed, ", ")).Warn("some queries failed")
	}

	return nil
}

func printReport(report *builder.Report) {
	data := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		status := "SUCCEEDED"
		rows := strconv.Itoa(outcome.Rows)
		if !outcome.Succeeded() {
			status = "FAILED"
			rows = "-"
		}

		data = append(data, []string{
			outcome.Query,
			status,
			rows,
			outcome.Duration.Round(time.Millisecond).String(),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"QUERY", "STATUS", "ROWS", "DURATION"})
	table.AppendBulk(data)
	table.Render()
}
