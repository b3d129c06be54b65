package command

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/robert-malhotra/go-c3d/c3d"
)

type axisStat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type markerStat struct {
	Index int         `json:"index"`
	Label string      `json:"label,omitempty"`
	Valid int         `json:"validFrames"`
	Axes  [3]axisStat `json:"axes"`
}

func newAxisStat(v []float64) axisStat {
	if len(v) == 0 {
		return axisStat{}
	}
	s := axisStat{Min: floats.Min(v), Max: floats.Max(v)}
	if len(v) == 1 {
		s.Mean = v[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
	return s
}

// markerStats summarizes every marker over the frames where it is valid.
func markerStats(f *c3d.File) []markerStat {
	labels := f.PointLabels()
	stats := make([]markerStat, f.PointCount())
	for i := range stats {
		var axes [3][]float64
		for _, fr := range f.Frames() {
			if !fr.Valid(i) {
				continue
			}
			x, y, z := fr.Point(i)
			axes[0] = append(axes[0], float64(x))
			axes[1] = append(axes[1], float64(y))
			axes[2] = append(axes[2], float64(z))
		}
		stats[i] = markerStat{Index: i, Valid: len(axes[0])}
		if i < len(labels) {
			stats[i].Label = labels[i]
		}
		for a := range axes {
			stats[i].Axes[a] = newAxisStat(axes[a])
		}
	}
	return stats
}

func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "summarize marker trajectories",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f := mustOpen(cmd, args[0])
			stats := markerStats(f)
			if IsFormatJSON(cmd) {
				printJSON(stats)
				return
			}

			t := newTable(table.Row{"#", "Label", "Valid", "Axis", "Mean", "StdDev", "Min", "Max"})
			for _, s := range stats {
				for a, name := range []string{"X", "Y", "Z"} {
					ax := s.Axes[a]
					t.AppendRow(table.Row{s.Index, s.Label, s.Valid, name, ax.Mean, ax.StdDev, ax.Min, ax.Max})
				}
				t.AppendSeparator()
			}
			t.SetCaption("%d frames", f.NumFrames())
			t.Render()
		},
	}
	return cmd
}
