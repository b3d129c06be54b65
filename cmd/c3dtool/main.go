// c3dtool inspects, re-encodes and edits C3D motion capture files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-c3d/cmd/c3dtool/command"
)

const (
	cliName        = "c3dtool"
	cliDescription = "the command-line tool for C3D files"
)

var (
	rootCmd = &cobra.Command{
		Use:          cliName,
		Short:        cliDescription,
		SilenceUsage: true,
	}
	globalFlags = command.GlobalFlags{}
)

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().StringVar(&globalFlags.Format, "format", "table", "output format, one of table or json")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "log level, one of debug, info, warn or error")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		command.InitLogging(globalFlags.LogLevel)
	}

	rootCmd.AddCommand(
		command.NewInfoCommand(),
		command.NewParamsCommand(),
		command.NewPointsCommand(),
		command.NewStatsCommand(),
		command.NewRewriteCommand(),
		command.NewEditCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("c3dtool error: %s\n", err)
		os.Exit(-1)
	}
}
