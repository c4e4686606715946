package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blacksmith-sol/blacksmith/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generated units",
	Long: `Removes the output directory. When it holds files blacksmith did not write,
you are asked before anything is deleted unless --yes is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSmith(appUI)
		if err != nil {
			return err
		}
		_, err = s.Clean(config.AssumeYes)
		return err
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&config.OutputDir, "output", "o", "", "Directory for generated units, relative to the project root.")
	cleanCmd.Flags().BoolVarP(&config.AssumeYes, "yes", "y", false, "Do not ask before removing files blacksmith did not generate.")
	rootCmd.AddCommand(cleanCmd)
}
