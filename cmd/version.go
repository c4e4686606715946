package cmd

import (
	"fmt"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
)

const (
	appName        = "blacksmith"
	appDescription = "Impersonation wrappers for Foundry tests"
	appWebsite     = "https://github.com/blacksmith-sol/blacksmith"
)

// Set with -ldflags at release time.
var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show blacksmith version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(appUI.Writer(), buildVersion(version, commit, date, builtBy, treeState).String())
	},
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(appName, appDescription, appWebsite),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
