package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/robert-malhotra/go-c3d/c3d"
	"github.com/robert-malhotra/go-c3d/editor"
	"github.com/robert-malhotra/go-c3d/internal/config"
	"github.com/robert-malhotra/go-c3d/internal/log"
)

var (
	configFile string
	addLabels  []string
)

// markerEditor builds the synthesizer for one configured marker. KindNone
// returns nil.
func markerEditor(m config.Marker) (editor.MarkerEditor, error) {
	switch m.Kind {
	case config.KindNone, "":
		return nil, nil
	case config.KindCircle:
		return editor.Circle(m.Radius, m.Period), nil
	case config.KindMidpoint:
		return editor.Midpoint(m.From[0], m.From[1]), nil
	case config.KindOscillate:
		axis, _ := config.AxisIndex(m.Axis)
		return editor.Oscillate(axis, m.Amplitude, m.Period), nil
	case config.KindTranslate:
		offset := r3.Vec{X: m.Offset[0], Y: m.Offset[1], Z: m.Offset[2]}
		return editor.Translate(m.From[0], offset), nil
	}
	return nil, errors.Wrapf(config.ErrInvalid, "unknown kind %q", m.Kind)
}

// jobHook routes every configured marker to its synthesizer.
func jobHook(c *config.Config) (editor.MarkerEditor, error) {
	editors := make(map[string]editor.MarkerEditor, len(c.Markers))
	for _, m := range c.Markers {
		e, err := markerEditor(m)
		if err != nil {
			return nil, errors.WithMessagef(err, "marker %s", m.Label)
		}
		if e != nil {
			editors[m.Label] = e
		}
	}
	return editor.ByLabel(editors), nil
}

// runJob opens the input, appends and synthesizes the markers and saves
// the output.
func runJob(c *config.Config) error {
	if c.LogLevel != "" {
		log.SetLogLevel(c.LogLevel)
	}
	hook, err := jobHook(c)
	if err != nil {
		return err
	}

	f, err := c3d.Open(c.Input)
	if err != nil {
		return err
	}
	opts, err := writeOptions(f, c.ByteOrder)
	if err != nil {
		return err
	}

	e, err := editor.New(f, hook, editor.WithNewMarkers(c.Labels()...), editor.WithWriteOptions(opts...))
	if err != nil {
		return err
	}
	return e.ProcessFile(c.Output)
}

func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [<in> <out>]",
		Short: "append markers and synthesize their trajectories",
		Long: "edit runs the job described by --config, or appends the --add markers " +
			"at the origin of every frame of <in> and saves the result to <out>.",
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			var (
				job *config.Config
				err error
			)
			switch {
			case configFile != "":
				job, err = config.InitConfig(configFile)
				if err != nil {
					cmdFailedf(cmd, "load job failed: %s", err)
				}
			case len(args) == 2 && len(addLabels) > 0:
				job = &config.Config{Input: args[0], Output: args[1], ByteOrder: byteOrder}
				for _, l := range addLabels {
					job.Markers = append(job.Markers, config.Marker{Label: l, Kind: config.KindNone})
				}
				if err = job.Validate(); err != nil {
					cmdFailedf(cmd, "%s", err)
				}
			default:
				cmdFailedf(cmd, "either --config or <in> <out> with --add MUST be set")
			}

			if err = runJob(job); err != nil {
				cmdFailedf(cmd, "edit %s failed: %s", job.Input, err)
			}
			printResult(cmd, "Edit Success", job.Output)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "YAML edit job")
	cmd.Flags().StringSliceVar(&addLabels, "add", nil, "labels of markers to append")
	cmd.Flags().StringVar(&byteOrder, "order", "", "output byte order: little, middle or big (default: same as input)")
	return cmd
}
