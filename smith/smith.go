// Package smith runs blacksmith end to end: it builds the project, finds
// the contracts to wrap, generates their units in parallel and writes them
// next to the shared support unit.
package smith

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/ethereum/go-ethereum/log"

	"github.com/blacksmith-sol/blacksmith/config"
	"github.com/blacksmith-sol/blacksmith/forge"
	"github.com/blacksmith-sol/blacksmith/gen"
	"github.com/blacksmith-sol/blacksmith/ui"
)

// ErrOutputHoldsSources is returned when the output directory is the source
// directory or one of its parents. Discovery skips the output directory, so
// nothing would ever be found.
var ErrOutputHoldsSources = errors.New("output directory contains the source directory")

// Smith carries what one run needs.
type Smith struct {
	Settings *config.Settings
	Builder  forge.Builder
	UI       ui.UI
}

// New returns a Smith for settings. A nil builder runs forge from
// settings.Forge in the project root.
func New(settings *config.Settings, builder forge.Builder, u ui.UI) *Smith {
	if builder == nil {
		builder = forge.NewRunner(settings.Forge, settings.Root)
	}
	return &Smith{Settings: settings, Builder: builder, UI: u}
}

// Failure is a contract that could not be wrapped.
type Failure struct {
	Target gen.Target
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s (%s): %s", f.Target.Name, f.Target.Source, f.Err)
}

// Report summarizes a create run.
type Report struct {
	// Build is nil when the build was skipped.
	Build    *forge.BuildResult
	Targets  []gen.Target
	Written  []string
	Failures []Failure
}

// Failed reports whether any contract could not be wrapped.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Build runs the project build behind a spinner and reports its status.
// A build that fails to compile is reported and the run goes on with
// whatever artifacts exist.
func (s *Smith) Build(ctx context.Context) (forge.BuildResult, error) {
	stop := s.UI.Spinner("building project...")
	res, err := s.Builder.Build(ctx)
	stop()
	if err != nil {
		return res, err
	}
	switch res.Status {
	case forge.BuildCompiled:
		s.UI.Success("%s", ui.Tagged("build", "completed"))
	case forge.BuildNoChange:
		s.UI.Info("%s", ui.Tagged("build", "no changes"))
	default:
		s.UI.Error("%s", ui.Tagged("build", "failed"))
		if res.Output != "" {
			fmt.Fprintln(s.UI.Indent().Writer(), res.Output)
		}
	}
	return res, nil
}

// Discover lists the contracts to wrap: every artifact in the cache whose
// source lives under the source directory, outside test code and the
// output directory, and not matched by an exclude pattern.
func (s *Smith) Discover() ([]gen.Target, error) {
	layout := s.Settings.Layout
	if contains(s.Settings.Output, layout.Src) {
		return nil, fmt.Errorf("%w: output %s, sources %s", ErrOutputHoldsSources, s.Settings.Output, layout.Src)
	}
	filter := forge.SourceFilter{
		SourceDir: layout.Src,
		SkipDirs: []string{
			path.Join(layout.Src, "test"),
			layout.Test,
			s.Settings.Output,
		},
	}
	all, err := forge.ReadCache(s.Settings.CacheFile(), filter)
	if err != nil {
		return nil, err
	}
	targets := make([]gen.Target, 0, len(all))
	for _, t := range all {
		if pattern, ok := s.excluded(t); ok {
			log.Debug("Excluding contract", "name", t.Name, "source", t.Source, "pattern", pattern)
			continue
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// contains reports whether dir is parent or lies below it. Both are slash
// paths relative to the project root.
func contains(parent, dir string) bool {
	parent, dir = path.Clean(parent), path.Clean(dir)
	if parent == "." {
		return !strings.HasPrefix(dir, "../") && dir != ".."
	}
	return dir == parent || strings.HasPrefix(dir, parent+"/")
}

func (s *Smith) excluded(t gen.Target) (string, bool) {
	for _, pattern := range s.Settings.Exclude {
		if ok, _ := path.Match(pattern, t.Name); ok {
			return pattern, true
		}
		if ok, _ := path.Match(pattern, t.Source); ok {
			return pattern, true
		}
	}
	return "", false
}

// Create builds (unless skipBuild), discovers, generates and writes. Per
// contract problems end up in the report; the returned error is for
// problems that stop the whole run.
func (s *Smith) Create(ctx context.Context, skipBuild bool) (*Report, error) {
	report := &Report{}
	if !skipBuild {
		res, err := s.Build(ctx)
		if err != nil {
			return report, err
		}
		report.Build = &res
	}

	targets, err := s.Discover()
	if err != nil {
		return report, err
	}
	report.Targets = targets
	s.UI.Info("%s", ui.Tagged("found", "%d contracts", len(targets)))

	units, failures := s.Generate(ctx, targets)
	if err := ctx.Err(); err != nil {
		return report, err
	}

	written, writeFailures, err := s.Write(units)
	report.Written = written
	report.Failures = append(failures, writeFailures...)
	if err != nil {
		return report, err
	}

	out := s.UI.Indent()
	for _, f := range report.Failures {
		out.Error("%s", ui.Tagged("failed", "%s", f.Error()))
	}
	return report, nil
}
