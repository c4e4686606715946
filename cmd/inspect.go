package cmd

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/blacksmith-sol/blacksmith/config"
	"github.com/blacksmith-sol/blacksmith/forge"
	"github.com/blacksmith-sol/blacksmith/gen"
	"github.com/blacksmith-sol/blacksmith/ui"
)

const maxCandidates = 10

var inspectCmd = &cobra.Command{
	Use:   "inspect <contract>",
	Short: "Show what blacksmith generates for one contract",
	Long: `Looks the contract up among the discovered ones (exact name first, then a
fuzzy match) and prints, for each function, its selector, its state
mutability and the signature of the generated wrapper. With --print the whole
unit is written to stdout instead of the summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSmith(appUI)
		if err != nil {
			return err
		}
		targets, err := s.Discover()
		if err != nil {
			return err
		}
		target, err := resolveTarget(appUI, targets, args[0])
		if err != nil {
			return err
		}

		if config.PrintUnit {
			unit, err := s.GenerateOne(target)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(appUI.Writer(), unit.Content)
			return err
		}

		outDir := s.Settings.Path(s.Settings.Layout.Out)
		abi, err := forge.LoadABI(outDir, target)
		if err != nil {
			return err
		}
		describeTarget(appUI, target, forge.ArtifactPath(outDir, target), abi)
		return nil
	},
}

type targetSource []gen.Target

func (t targetSource) String(i int) string { return t[i].Name }
func (t targetSource) Len() int            { return len(t) }

// resolveTarget finds name among targets: an exact name wins, otherwise the
// best fuzzy matches are offered and the user picks one when there are
// several.
func resolveTarget(u ui.UI, targets []gen.Target, name string) (gen.Target, error) {
	var exact []gen.Target
	for _, t := range targets {
		if t.Name == name {
			exact = append(exact, t)
		}
	}
	candidates := exact
	if len(candidates) == 0 {
		for i, m := range fuzzy.FindFrom(name, targetSource(targets)) {
			if i == maxCandidates {
				break
			}
			candidates = append(candidates, targets[m.Index])
		}
	}

	switch len(candidates) {
	case 0:
		return gen.Target{}, fmt.Errorf("no contract matches %q", name)
	case 1:
		if candidates[0].Name != name {
			u.Interpret(fmt.Sprintf("%s (%s)", candidates[0].Name, candidates[0].Source))
		}
		return candidates[0], nil
	}
	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = fmt.Sprintf("%s (%s)", c.Name, c.Source)
	}
	idx := u.Choose(fmt.Sprintf("Several contracts match %q, which one?", name), options)
	u.Interpret(options[idx])
	return candidates[idx], nil
}

func describeTarget(u ui.UI, target gen.Target, artifact string, abi gen.Descriptor) {
	u.Section(target.Name)
	u.KeyValue([][2]string{
		{"source", target.Source},
		{"artifact", artifact},
		{"unit", target.UnitFileName()},
		{"wrapper", target.Name + "BS"},
	})

	fns := abi.Functions()
	rows := make([][]string, 0, len(fns))
	for _, fn := range fns {
		selector, err := gen.Selector(fn)
		if err != nil {
			selector = "-"
		}
		mutability := fn.StateMutability
		if mutability == "" {
			mutability = gen.NonPayable
		}
		rows = append(rows, []string{selector, mutability, gen.Signature(fn)})
	}
	u.Table([]string{"SELECTOR", "MUTABILITY", "WRAPPER"}, rows)
	u.Info("%s", ui.Tagged("found", "%d functions", len(fns)))
}

func init() {
	AddProjectFlags(inspectCmd)
	inspectCmd.Flags().BoolVarP(&config.PrintUnit, "print", "p", false, "Print the full generated unit.")
	rootCmd.AddCommand(inspectCmd)
}
