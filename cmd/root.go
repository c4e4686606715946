// Copyright © 2024 The blacksmith Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/blacksmith-sol/blacksmith/config"
	"github.com/blacksmith-sol/blacksmith/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blacksmith",
	Short: "Generate impersonation wrappers for your Foundry contracts",
	Long: `Blacksmith reads the build artifacts of a Foundry project and writes, for
every contract under the source directory, a <Name>.bs.sol unit with a
<Name>BS contract. Each wrapper function starts a prank as a chosen address
and forwards the call to the real contract, so tests can act as many users
without repeating vm.prank everywhere.

Generated units share Blacksmith.sol, a small user contract that can hold
ether, send calls and sign digests with its private key.

Settings are read from foundry.toml ([profile.default] src, out, test,
cache_path) and the optional blacksmith.yaml (output, exclude, jobs, forge).
Flags win over both files.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(config.Verbosity, config.Debug)
	},
}

var logLevels = map[string]slog.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"crit":  log.LevelCrit,
}

// setupLogging points go-ethereum's default logger at stderr with the
// requested level. Diagnostics never go through the UI.
func setupLogging(verbosity string, debug bool) error {
	lvl, ok := logLevels[strings.ToLower(verbosity)]
	if !ok {
		return fmt.Errorf("unknown verbosity %q", verbosity)
	}
	if debug {
		lvl = log.LevelDebug
	}
	h := log.NewTerminalHandlerWithLevel(os.Stderr, lvl, false)
	log.SetDefault(log.NewLogger(h))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.ProjectRoot, "root", "C", ".", "Foundry project root, the directory holding foundry.toml.")
	rootCmd.PersistentFlags().StringVar(&config.Verbosity, "verbosity", "warn", "Diagnostic log level: trace, debug, info, warn, error or crit.")
	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false, "Shortcut for --verbosity debug.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		appUI.Error("%s", err)
		stop()
		os.Exit(1)
	}
}
