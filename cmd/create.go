package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blacksmith-sol/blacksmith/config"
	"github.com/blacksmith-sol/blacksmith/ui"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Build the project and generate a wrapper unit for every contract",
	Long: `Runs forge build, reads the compiler cache to find the contracts under the
source directory and writes <Name>.bs.sol for each of them plus
Blacksmith.sol into the output directory.

A contract that cannot be wrapped is reported and skipped; the command exits
with an error when that happened to any of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSmith(appUI)
		if err != nil {
			return err
		}
		report, err := s.Create(cmd.Context(), config.SkipBuild)
		if err != nil {
			return err
		}
		if report.Failed() {
			return fmt.Errorf("%d of %d contracts could not be wrapped", len(report.Failures), len(report.Targets))
		}
		appUI.Info("%s", ui.Tagged("done", "%d file(s) in %s", len(report.Written), s.Settings.Output))
		return nil
	},
}

func init() {
	AddProjectFlags(createCmd)
	createCmd.Flags().BoolVar(&config.SkipBuild, "skip-build", false, "Use the existing cache and artifacts without running forge build.")
	rootCmd.AddCommand(createCmd)
}
