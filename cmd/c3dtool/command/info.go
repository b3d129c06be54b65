package command

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/c3d"
)

type fileInfo struct {
	Path            string      `json:"path"`
	ByteOrder       string      `json:"byteOrder"`
	DataFormat      string      `json:"dataFormat"`
	AnalogFormat    string      `json:"analogFormat"`
	Points          int         `json:"points"`
	AnalogChannels  int         `json:"analogChannels"`
	AnalogSamples   int         `json:"analogSamplesPerFrame"`
	FirstFrame      int         `json:"firstFrame"`
	LastFrame       int         `json:"lastFrame"`
	Frames          int         `json:"frames"`
	FrameRate       float32     `json:"frameRate"`
	AnalogRate      float32     `json:"analogRate"`
	Scale           float32     `json:"scale"`
	MaxGap          int         `json:"maxInterpolationGap"`
	ParamStartBlock int         `json:"paramStartBlock"`
	ParamBlocks     int         `json:"paramBlocks"`
	DataStartBlock  int         `json:"dataStartBlock"`
	Events          []c3d.Event `json:"events,omitempty"`
}

func newFileInfo(f *c3d.File) *fileInfo {
	return &fileInfo{
		Path:            f.Path(),
		ByteOrder:       f.ByteOrder().String(),
		DataFormat:      f.DataFormat().String(),
		AnalogFormat:    f.AnalogFormat().String(),
		Points:          f.PointCount(),
		AnalogChannels:  f.AnalogChannels(),
		AnalogSamples:   f.AnalogSamplesPerFrame(),
		FirstFrame:      f.FirstFrame(),
		LastFrame:       f.LastFrame(),
		Frames:          f.NumFrames(),
		FrameRate:       f.FrameRate(),
		AnalogRate:      f.AnalogRate(),
		Scale:           f.Scale(),
		MaxGap:          f.MaxInterpolationGap(),
		ParamStartBlock: f.ParamStartBlock(),
		ParamBlocks:     f.ParamBlocks(),
		DataStartBlock:  f.DataStartBlock(),
		Events:          f.Events(),
	}
}

func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "show the header of a C3D file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			info := newFileInfo(mustOpen(cmd, args[0]))
			if IsFormatJSON(cmd) {
				printJSON(info)
				return
			}

			t := newTable(table.Row{"Field", "Value"})
			t.AppendRows([]table.Row{
				{"Path", info.Path},
				{"Byte order", info.ByteOrder},
				{"Data format", info.DataFormat},
				{"Analog format", info.AnalogFormat},
				{"Points", info.Points},
				{"Analog channels", info.AnalogChannels},
				{"Analog samples per frame", info.AnalogSamples},
				{"Frames", info.Frames},
				{"First frame", info.FirstFrame},
				{"Last frame", info.LastFrame},
				{"Frame rate", info.FrameRate},
				{"Analog rate", info.AnalogRate},
				{"Scale", info.Scale},
				{"Max interpolation gap", info.MaxGap},
				{"Parameter block", info.ParamStartBlock},
				{"Parameter blocks", info.ParamBlocks},
				{"Data block", info.DataStartBlock},
			})
			t.Render()

			if len(info.Events) == 0 {
				return
			}
			events := newTable(table.Row{"Event", "Label", "Time", "Displayed"})
			for i, e := range info.Events {
				events.AppendRow(table.Row{i + 1, e.Label, e.Time, e.Display})
			}
			events.Render()
		},
	}
	return cmd
}
