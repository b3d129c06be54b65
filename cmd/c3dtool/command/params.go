package command

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/c3d"
)

var (
	group    string
	maxWidth int
)

type paramInfo struct {
	Path        string      `json:"path"`
	Type        string      `json:"type"`
	Dims        []int       `json:"dims"`
	Locked      bool        `json:"locked"`
	Value       interface{} `json:"value"`
	Description string      `json:"description,omitempty"`
}

func NewParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params <file>",
		Short: "list the parameters of a C3D file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f := mustOpen(cmd, args[0])

			var params []*c3d.Parameter
			err := f.Walk(func(_ string, g *c3d.Group, p *c3d.Parameter) error {
				if p == nil {
					return nil
				}
				if group != "" && !strings.EqualFold(g.Name(), group) {
					return nil
				}
				params = append(params, p)
				return nil
			})
			if err != nil {
				cmdFailedf(cmd, "walk parameters failed: %s", err)
			}

			if IsFormatJSON(cmd) {
				infos := make([]paramInfo, len(params))
				for i, p := range params {
					infos[i] = paramInfo{
						Path:        p.Path(),
						Type:        p.Type().String(),
						Dims:        p.Dims(),
						Locked:      p.Locked(),
						Value:       p.Value(),
						Description: p.Description(),
					}
				}
				printJSON(infos)
				return
			}
			t := newTable(table.Row{"Parameter", "Type", "Dims", "Value", "Description"})
			for _, p := range params {
				t.AppendRow(table.Row{p.Path(), p.Type(), p.Dims(), text.Trim(p.ValueString(), maxWidth), p.Description()})
			}
			t.Render()
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only list parameters of this group")
	cmd.Flags().IntVar(&maxWidth, "max-width", 60, "truncate displayed values to this many characters")
	return cmd
}
