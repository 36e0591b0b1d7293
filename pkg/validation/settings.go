// Package validation provides functionality for validating builder settings and queries.
package validation

import (
	"fmt"
	"strings"

	"github.com/ogsdata/dashgen/pkg/config"
	"github.com/ogsdata/dashgen/pkg/constant"
)

// ValidateSettings validates the builder configuration settings.
// It checks for required fields and valid values.
func ValidateSettings(settings *config.Settings) error {
	if settings == nil {
		return fmt.Errorf("builder settings cannot be nil")
	}

	if settings.Region == "" {
		return fmt.Errorf("AWS region cannot be empty")
	}

	if settings.Database == "" {
		return fmt.Errorf("Athena database cannot be empty")
	}

	if settings.OutputLocation == "" {
		return fmt.Errorf("Athena output location cannot be empty")
	}

	if !strings.HasPrefix(settings.OutputLocation, "s3://") {
		return fmt.Errorf("Athena output location must be an s3:// URL, got %q", settings.OutputLocation)
	}

	if settings.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be a positive duration")
	}

	if settings.FetchMode != constant.FetchModeAPI && settings.FetchMode != constant.FetchModeS3 {
		return fmt.Errorf("fetch mode must be %q or %q, got %q", constant.FetchModeAPI, constant.FetchModeS3, settings.FetchMode)
	}

	if settings.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}

	return nil
}
