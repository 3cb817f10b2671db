package main

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/photoflow/service/internal/client"
)

// renderSummary renders the per-file outcome of an upload run.
func renderSummary(report *client.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Key", "State", "Error"})

	for _, f := range report.Files {
		errMsg := ""
		if f.Err != nil {
			errMsg = f.Err.Error()
		}
		tw.AppendRow(table.Row{f.Name, f.Target.Key, f.State, errMsg})
	}

	return tw.Render()
}
