package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcspin",
		Short: "Growing arc loading spinner",
		Long:  "arcspin derives the keyframe schedule of a growing and shrinking arc spinner, prints it, samples it and previews it in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arcspin.toml (default: next to the binary, then ~/.config/arcspin)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Show detailed log output")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newScheduleCmd())
	cmd.AddCommand(newSampleCmd())
	cmd.AddCommand(newPreviewCmd())

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print arcspin version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "arcspin", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}
