package command

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/c3d"
)

var frameIndex int

type pointInfo struct {
	Index    int     `json:"index"`
	Label    string  `json:"label,omitempty"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Residual float32 `json:"residual"`
	CamMask  uint8   `json:"cameraMask"`
	Valid    bool    `json:"valid"`
}

func framePoints(f *c3d.File, frame int) ([]pointInfo, error) {
	if frame < 0 || frame >= f.NumFrames() {
		return nil, errors.Errorf("frame %d out of range [0, %d)", frame, f.NumFrames())
	}
	fr := f.Frame(frame)
	labels := f.PointLabels()
	points := make([]pointInfo, fr.NumPoints())
	for i := range points {
		x, y, z := fr.Point(i)
		points[i] = pointInfo{
			Index:    i,
			X:        x,
			Y:        y,
			Z:        z,
			Residual: fr.Residual[i],
			CamMask:  fr.CamMask[i],
			Valid:    fr.Valid(i),
		}
		if i < len(labels) {
			points[i].Label = labels[i]
		}
	}
	return points, nil
}

func NewPointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points <file>",
		Short: "show the 3D points of one frame",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f := mustOpen(cmd, args[0])
			points, err := framePoints(f, frameIndex)
			if err != nil {
				cmdFailedf(cmd, "%s", err)
			}

			if IsFormatJSON(cmd) {
				printJSON(points)
				return
			}
			t := newTable(table.Row{"#", "Label", "X", "Y", "Z", "Residual", "Cameras", "Valid"})
			for _, p := range points {
				t.AppendRow(table.Row{p.Index, p.Label, p.X, p.Y, p.Z, p.Residual, fmt.Sprintf("%08b", p.CamMask), p.Valid})
			}
			t.SetCaption("frame %d of %d", frameIndex, f.NumFrames())
			t.Render()
		},
	}
	cmd.Flags().IntVar(&frameIndex, "frame", 0, "zero based frame index")
	return cmd
}
