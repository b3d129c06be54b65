package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/c3d"
)

func cmdFailedf(cmd *cobra.Command, format string, a ...interface{}) {
	errStr := format
	if a != nil {
		errStr = fmt.Sprintf(format, a...)
	}
	if IsFormatJSON(cmd) {
		m := map[string]string{"ERROR": errStr}
		data, _ := json.Marshal(m)
		color.Red(string(data))
	} else {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"ERROR"})
		t.AppendRow(table.Row{errStr})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, VAlign: text.VAlignMiddle, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		})
		t.SetOutputMirror(os.Stdout)
		t.Render()
	}

	os.Exit(-1)
}

func mustOpen(cmd *cobra.Command, path string) *c3d.File {
	f, err := c3d.Open(path)
	if err != nil {
		cmdFailedf(cmd, "open %s failed: %s", path, err)
	}
	return f
}

func printJSON(v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	color.Green(string(data))
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(header)
	t.SetOutputMirror(os.Stdout)
	return t
}

func printResult(cmd *cobra.Command, result, path string) {
	if IsFormatJSON(cmd) {
		data, _ := json.Marshal(map[string]interface{}{"Result": result, "Path": path})
		color.Green(string(data))
		return
	}
	t := newTable(table.Row{"Result", "Path"})
	t.AppendRow(table.Row{result, path})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, VAlign: text.VAlignMiddle, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 2, AlignHeader: text.AlignCenter},
	})
	t.Render()
}
