package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ProjectFile is blacksmith's optional per-project configuration.
const ProjectFile = "blacksmith.yaml"

// Project mirrors blacksmith.yaml.
type Project struct {
	// Output is the directory generated units are written to.
	Output string `yaml:"output"`
	// Exclude lists glob patterns; a contract is skipped when its name or
	// source path matches one of them.
	Exclude []string `yaml:"exclude"`
	Jobs    int      `yaml:"jobs"`
	Forge   string   `yaml:"forge"`
}

// LoadProject reads <root>/blacksmith.yaml. A missing file is not an error.
func LoadProject(root string) (Project, error) {
	var p Project
	content, err := os.ReadFile(filepath.Join(root, ProjectFile))
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read %s: %w", ProjectFile, err)
	}
	if err := yaml.Unmarshal(content, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", ProjectFile, err)
	}
	for _, pattern := range p.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return p, fmt.Errorf("%s: bad exclude pattern %q: %w", ProjectFile, pattern, err)
		}
	}
	return p, nil
}

// DefaultOutput is where units go unless configured: <src>/test/blacksmith.
func DefaultOutput(l Layout) string {
	return path.Join(l.Src, "test", "blacksmith")
}

// Resolve computes the settings for the project at root: built-in
// defaults, then foundry.toml, then blacksmith.yaml, then flags.
func Resolve(root string, flags Flags) (*Settings, error) {
	if root == "" {
		root = "."
	}
	layout, err := LoadLayout(root)
	if err != nil {
		return nil, err
	}
	project, err := LoadProject(root)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Root:    root,
		Layout:  layout,
		Output:  DefaultOutput(layout),
		Exclude: project.Exclude,
		Jobs:    runtime.NumCPU(),
		Forge:   "forge",
	}
	if project.Output != "" {
		s.Output = project.Output
	}
	if project.Jobs > 0 {
		s.Jobs = project.Jobs
	}
	if project.Forge != "" {
		s.Forge = project.Forge
	}

	if flags.Output != "" {
		s.Output = filepath.ToSlash(flags.Output)
	}
	if flags.Jobs > 0 {
		s.Jobs = flags.Jobs
	}
	if flags.Forge != "" {
		s.Forge = flags.Forge
	}

	output, err := rootRelative(root, s.Output)
	if err != nil {
		return nil, err
	}
	s.Output = output
	return s, nil
}

// rootRelative turns an absolute output directory into one relative to
// root, in slash form. Relative directories are only cleaned.
func rootRelative(root, dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		return path.Clean(filepath.ToSlash(dir)), nil
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}
	rel, err := filepath.Rel(absRoot, filepath.Clean(dir))
	if err != nil {
		return "", fmt.Errorf("output %s: %w", dir, err)
	}
	return filepath.ToSlash(rel), nil
}

// Path joins a project relative path onto the root.
func (s *Settings) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// CacheFile is the compiler cache index of the project.
func (s *Settings) CacheFile() string {
	return s.Path(path.Join(s.Layout.Cache, "solidity-files-cache.json"))
}
