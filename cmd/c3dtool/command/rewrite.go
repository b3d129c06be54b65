package command

import (
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/c3d"
	"github.com/robert-malhotra/go-c3d/internal/config"
	"github.com/robert-malhotra/go-c3d/internal/log"
)

var byteOrder string

// writeOptions keeps the source byte order unless name is set.
func writeOptions(f *c3d.File, name string) ([]c3d.WriteOption, error) {
	if name == "" {
		return []c3d.WriteOption{c3d.WithSourceOrder(f)}, nil
	}
	order, err := config.ParseOrder(name)
	if err != nil {
		return nil, err
	}
	return []c3d.WriteOption{c3d.WithByteOrder(order)}, nil
}

func NewRewriteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite <in> <out>",
		Short: "decode a C3D file and encode it again",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			f := mustOpen(cmd, args[0])
			opts, err := writeOptions(f, byteOrder)
			if err != nil {
				cmdFailedf(cmd, "%s", err)
			}
			if err = f.Save(args[1], opts...); err != nil {
				cmdFailedf(cmd, "save %s failed: %s", args[1], err)
			}
			log.Info("file rewritten", map[string]interface{}{
				log.KeyPath:   args[1],
				log.KeyFrames: f.NumFrames(),
			})
			printResult(cmd, "Rewrite Success", args[1])
		},
	}
	cmd.Flags().StringVar(&byteOrder, "order", "", "output byte order: little, middle or big (default: same as input)")
	return cmd
}
