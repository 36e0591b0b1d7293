// Package config provides configuration management for the dataset builder.
// Settings come from the environment (DASHGEN_ prefixed variables) and an
// optional configuration file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ogsdata/dashgen/pkg/constant"
)

// Defaults applied when neither the environment nor a configuration file
// provides a value.
const (
	DefaultRegion       = "us-east-1"
	DefaultDatabase     = "ecommerce_db"
	DefaultPollInterval = 2 * time.Second
	DefaultOutputFile   = "dashboard-data.json"
	DefaultUploadKey    = "data/dashboard-data.json"
)

// SettingsError represents an error specifically related to builder settings.
type SettingsError struct {
	Msg string
	Err error // Wrapped error
}

func (e *SettingsError) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return fmt.Sprintf("%s: %v", e.Msg, e.Err)
		}
		return fmt.Sprintf("%v", e.Err)
	}
	return e.Msg
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// Settings holds the runtime configuration for a dashboard build.
type Settings struct {
	// Region is the AWS region the Athena and S3 clients talk to.
	Region string `mapstructure:"region"`
	// Database is the Athena database the queries run in.
	Database string `mapstructure:"database"`
	// Workgroup optionally pins query executions to an Athena workgroup.
	Workgroup string `mapstructure:"workgroup"`
	// OutputLocation is the s3:// prefix Athena stages query results under.
	OutputLocation string `mapstructure:"output-location"`
	// PollInterval is the fixed delay between execution status checks.
	PollInterval time.Duration `mapstructure:"poll-interval"`
	// FetchMode selects how completed results are materialized ("api" or "s3").
	FetchMode string `mapstructure:"fetch-mode"`
	// OutputFile is where the dashboard document is written.
	OutputFile string `mapstructure:"output-file"`
	// EmitEmptyDatasets keeps failed queries in the document as empty lists
	// instead of omitting their keys.
	EmitEmptyDatasets bool `mapstructure:"emit-empty-datasets"`
	// UploadBucket and UploadKey locate the published copy of the document.
	UploadBucket string `mapstructure:"upload-bucket"`
	UploadKey    string `mapstructure:"upload-key"`
}

// Load reads settings from the environment and, when path is not empty, the
// given configuration file. File values override defaults, environment
// variables override both.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("region", DefaultRegion)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("workgroup", "")
	v.SetDefault("output-location", "")
	v.SetDefault("poll-interval", DefaultPollInterval)
	v.SetDefault("fetch-mode", constant.FetchModeAPI)
	v.SetDefault("output-file", DefaultOutputFile)
	v.SetDefault("emit-empty-datasets", false)
	v.SetDefault("upload-bucket", "")
	v.SetDefault("upload-key", DefaultUploadKey)

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, &SettingsError{Msg: fmt.Sprintf("could not read configuration file %q", path), Err: err}
		}
	}

	settings := &Settings{}
	err := v.Unmarshal(settings)
	if err != nil {
		return nil, &SettingsError{Msg: "could not unmarshal settings", Err: err}
	}

	return settings, nil
}
