package main

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ogsdata/dashgen/pkg/queries"
)

type cmdQueries struct {
	global *cmdGlobal
}

func (c *cmdQueries) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "queries"
	cmd.Short = "List the registered dashboard queries"
	cmd.RunE = c.run

	return cmd
}

func (c *cmdQueries) run(cmd *cobra.Command, args []string) error {
	data := [][]string{}
	for _, query := range queries.All() {
		data = append(data, []string{query.Name, query.Description})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"NAME", "DESCRIPTION"})
	table.AppendBulk(data)
	table.Render()

	return nil
}
