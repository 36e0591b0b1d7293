package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ogsdata/dashgen/pkg/client"
	"github.com/ogsdata/dashgen/pkg/config"
	"github.com/ogsdata/dashgen/pkg/constant"
	"github.com/ogsdata/dashgen/pkg/executor"
	"github.com/ogsdata/dashgen/pkg/results"
	"github.com/ogsdata/dashgen/pkg/validation"
)

// Overridden at build time.
var version = "dev"

type cmdGlobal struct {
	flagConfig  string
	flagDebug   bool
	flagQuiet   bool
	flagHelp    bool
	flagVersion bool
}

// PreRun runs immediately prior to the main Run function.
func (c *cmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case c.flagDebug:
		logrus.SetLevel(logrus.DebugLevel)
	case c.flagQuiet:
		logrus.SetLevel(logrus.WarnLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	return nil
}

// settings loads and validates the builder configuration.
func (c *cmdGlobal) settings() (*config.Settings, error) {
	settings, err := config.Load(c.flagConfig)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateSettings(settings)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// runner assembles a query executor and the AWS clients it runs on.
func (c *cmdGlobal) runner(settings *config.Settings) (*executor.Executor, *client.AWS, error) {
	clients, err := client.New(settings.Region, &client.DefaultSessionFactory{})
	if err != nil {
		return nil, nil, err
	}

	var fetcher executor.ResultFetcher
	switch settings.FetchMode {
	case constant.FetchModeS3:
		fetcher = results.NewS3Fetcher(clients.Downloader)
	default:
		fetcher = results.NewAPIFetcher(clients.Athena)
	}

	return executor.New(clients.Athena, fetcher, settings), clients, nil
}

func run() error {
	// root command
	app := &cobra.Command{}
	app.Use = "dashgen"
	app.Short = "E-commerce dashboard dataset builder"
	app.Long = `Description:
  E-commerce dashboard dataset builder

  This tool runs the registered analytical queries against Athena and
  assembles their results into the JSON document served to the static
  dashboard.
`
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}

	// Global flags
	globalCmd := cmdGlobal{}
	app.PersistentFlags().BoolVar(&globalCmd.flagVersion, "version", false, "Print version number")
	app.PersistentFlags().BoolVarP(&globalCmd.flagHelp, "help", "h", false, "Print help")
	app.PersistentFlags().StringVarP(&globalCmd.flagConfig, "config", "c", "", "Path to a configuration file")
	app.PersistentFlags().BoolVarP(&globalCmd.flagDebug, "debug", "d", false, "Show debug messages")
	app.PersistentFlags().BoolVarP(&globalCmd.flagQuiet, "quiet", "q", false, "Only show warnings and errors")
	app.PersistentPreRunE = globalCmd.PreRun

	// Version handling
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version

	// generate sub-command
	generateCmd := cmdGenerate{global: &globalCmd}
	app.AddCommand(generateCmd.command())

	// check sub-command
	checkCmd := cmdCheck{global: &globalCmd}
	app.AddCommand(checkCmd.command())

	// queries sub-command
	queriesCmd := cmdQueries{global: &globalCmd}
	app.AddCommand(queriesCmd.command())

	return app.Execute()
}

func main() {
	err := run()
	if err != nil {
		os.Exit(1)
	}
}
