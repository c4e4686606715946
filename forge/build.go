package forge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ethereum/go-ethereum/log"
)

// DefaultBinary is the build tool invoked when none is configured.
const DefaultBinary = "forge"

// BuildStatus is the outcome of a build as read from the tool's output.
type BuildStatus int

const (
	BuildFailed BuildStatus = iota
	BuildCompiled
	BuildNoChange
)

func (s BuildStatus) String() string {
	switch s {
	case BuildCompiled:
		return "compiled"
	case BuildNoChange:
		return "no change"
	default:
		return "failed"
	}
}

// OK reports whether the artifacts are up to date after the build.
func (s BuildStatus) OK() bool {
	return s == BuildCompiled || s == BuildNoChange
}

// BuildResult carries the status and the combined output of a build.
type BuildResult struct {
	Status BuildStatus
	Output string
}

// Builder builds a project so that its cache and artifacts are current.
type Builder interface {
	Build(ctx context.Context) (BuildResult, error)
}

// Runner runs `forge build` in a project directory.
type Runner struct {
	Binary string
	Dir    string
}

// NewRunner returns a Runner for the project at dir. An empty binary
// selects DefaultBinary.
func NewRunner(binary, dir string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{Binary: binary, Dir: dir}
}

// Build runs the build and classifies its output. A build that runs but
// fails to compile is not an error: the result says BuildFailed and the
// caller decides whether to go on. Errors are returned when the binary
// cannot be found or started, or when ctx is cancelled.
func (r *Runner) Build(ctx context.Context) (BuildResult, error) {
	path, err := exec.LookPath(r.Binary)
	if err != nil {
		return BuildResult{}, fmt.Errorf("%w: %s", ErrForgeNotFound, r.Binary)
	}

	cmd := exec.CommandContext(ctx, path, "build")
	cmd.Dir = r.Dir
	log.Debug("Running build", "bin", path, "dir", r.Dir)

	out, err := cmd.CombinedOutput()
	result := BuildResult{Output: string(out)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			log.Debug("Build exited with error", "code", exitErr.ExitCode())
			result.Status = BuildFailed
			return result, nil
		}
		return result, fmt.Errorf("run %s build: %w", r.Binary, err)
	}
	result.Status = ClassifyOutput(result.Output)
	return result, nil
}

// ClassifyOutput reads a build log. Compilation wins over "no change" when
// both appear; anything else counts as a failure.
func ClassifyOutput(output string) BuildStatus {
	status := BuildFailed
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(ansi.Strip(scanner.Text()))
		switch {
		case strings.HasPrefix(line, "Compiler run successful"):
			return BuildCompiled
		case strings.HasPrefix(line, "No files changed"):
			status = BuildNoChange
		}
	}
	return status
}
