package smith

import (
	"context"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"

	"github.com/blacksmith-sol/blacksmith/forge"
	"github.com/blacksmith-sol/blacksmith/gen"
)

// Unit is a generated wrapper ready to be written.
type Unit struct {
	Target  gen.Target
	Content string
}

// FileName is the unit's file name inside the output directory.
func (u Unit) FileName() string {
	return u.Target.UnitFileName()
}

// GenerateOne loads target's ABI and renders its unit.
func (s *Smith) GenerateOne(target gen.Target) (Unit, error) {
	abi, err := forge.LoadABI(s.Settings.Path(s.Settings.Layout.Out), target)
	if err != nil {
		return Unit{}, err
	}
	// Absolute paths keep the import computable when the output directory
	// lies outside the project root.
	outDir, err := filepath.Abs(s.OutputPath())
	if err != nil {
		return Unit{}, err
	}
	source, err := filepath.Abs(s.Settings.Path(target.Source))
	if err != nil {
		return Unit{}, err
	}
	content, err := gen.GenerateContract(target, abi, gen.UnitOptions{OutputDir: outDir, SourcePath: source})
	if err != nil {
		return Unit{}, err
	}
	return Unit{Target: target, Content: content}, nil
}

// Generate renders a unit per target with at most Settings.Jobs workers.
// Units and failures keep the order of targets whatever the scheduling.
func (s *Smith) Generate(ctx context.Context, targets []gen.Target) ([]Unit, []Failure) {
	units := make([]Unit, len(targets))
	errs := make([]error, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.Settings.Jobs, 1))
	for i, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			log.Debug("Generating unit", "name", t.Name, "source", t.Source)
			units[i], errs[i] = s.GenerateOne(t)
			return nil
		})
	}
	g.Wait()

	var (
		ok       []Unit
		failures []Failure
	)
	for i, t := range targets {
		if errs[i] != nil {
			failures = append(failures, Failure{Target: t, Err: errs[i]})
			continue
		}
		ok = append(ok, units[i])
	}
	return ok, failures
}
