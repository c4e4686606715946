package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blacksmith-sol/blacksmith/config"
)

// AddProjectFlags adds the flags that override blacksmith.yaml.
func AddProjectFlags(c *cobra.Command) {
	c.Flags().
		StringVarP(&config.OutputDir, "output", "o", "", "Directory for generated units, relative to the project root. Defaults to <src>/test/blacksmith.")
	c.Flags().
		StringVar(&config.ForgeBin, "forge", "", "forge binary to build with. Defaults to \"forge\" from PATH.")
	c.Flags().
		IntVarP(&config.Jobs, "jobs", "j", 0, "Number of contracts generated in parallel. Defaults to the number of CPUs.")
}
