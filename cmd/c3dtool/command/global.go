package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/internal/log"
)

const (
	FormatJSON = "json"
)

type GlobalFlags struct {
	Format   string
	LogLevel string
}

func IsFormatJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetString("format")
	if err != nil {
		return false
	}
	return strings.ToLower(v) == FormatJSON
}

// InitLogging overrides the C3D_LOG_LEVEL level when level is set.
func InitLogging(level string) {
	if level != "" {
		log.SetLogLevel(level)
	}
}
