// Package config holds blacksmith's settings. Command-line flags are bound
// to the package variables below; Resolve layers them over the project's
// foundry.toml and blacksmith.yaml.
package config

var (
	ProjectRoot string
	OutputDir   string
	ForgeBin    string
	Jobs        int
	SkipBuild   bool
	AssumeYes   bool

	Verbosity string
	Debug     bool

	OutputFormat string
	PrintUnit    bool
)

// Settings is the effective configuration of one run. Directories are
// relative to Root and use forward slashes.
type Settings struct {
	Root    string
	Layout  Layout
	Output  string
	Exclude []string
	Jobs    int
	Forge   string
}

// Flags captures the command-line overrides. Zero values mean "not set".
type Flags struct {
	Output string
	Forge  string
	Jobs   int
}

// CurrentFlags returns the overrides bound by the command line.
func CurrentFlags() Flags {
	return Flags{Output: OutputDir, Forge: ForgeBin, Jobs: Jobs}
}
