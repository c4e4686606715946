package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blacksmith-sol/blacksmith/config"
	"github.com/blacksmith-sol/blacksmith/gen"
	"github.com/blacksmith-sol/blacksmith/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the contracts blacksmith would wrap",
	Long: `Lists the contracts found in the compiler cache after filtering, without
building or writing anything. Run forge build first if the cache is stale.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSmith(appUI)
		if err != nil {
			return err
		}
		targets, err := s.Discover()
		if err != nil {
			return err
		}
		return renderTargets(appUI, config.OutputFormat, targets)
	},
}

func renderTargets(u ui.UI, format string, targets []gen.Target) error {
	switch strings.ToLower(format) {
	case "", "table":
		rows := make([][]string, len(targets))
		for i, t := range targets {
			rows[i] = []string{t.Name, t.Source, t.UnitFileName()}
		}
		u.Table([]string{"CONTRACT", "SOURCE", "UNIT"}, rows)
		u.Info("%s", ui.Tagged("found", "%d contracts", len(targets)))
		return nil
	case "json":
		if targets == nil {
			targets = []gen.Target{}
		}
		content, err := json.MarshalIndent(targets, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(u.Writer(), string(content))
		return err
	case "yaml":
		enc := yaml.NewEncoder(u.Writer())
		enc.SetIndent(2)
		if err := enc.Encode(targets); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, use table, json or yaml", format)
	}
}

func init() {
	listCmd.Flags().StringVarP(&config.OutputFormat, "output", "o", "table", "Output format: table, json or yaml.")
	rootCmd.AddCommand(listCmd)
}
