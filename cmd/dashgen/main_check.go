package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogsdata/dashgen/pkg/health"
)

type cmdCheck struct {
	global *cmdGlobal
}

func (c *cmdCheck) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "check"
	cmd.Short = "Verify connectivity to Athena"
	cmd.RunE = c.run

	return cmd
}

func (c *cmdCheck) run(cmd *cobra.Command, args []string) error {
	settings, err := c.global.settings()
	if err != nil {
		return err
	}

	runner, _, err := c.global.runner(settings)
	if err != nil {
		return err
	}

	result := health.Check(cmd.Context(), runner)
	if result.Status != health.StatusOk {
		return errors.New(result.Message)
	}

	fmt.Println(result.Message)
	return nil
}
