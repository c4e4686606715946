package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/naoina/toml"
)

// FoundryFile is Foundry's project configuration file.
const FoundryFile = "foundry.toml"

// Layout is the directory layout of a Foundry project.
type Layout struct {
	Src   string `toml:"src"`
	Out   string `toml:"out"`
	Test  string `toml:"test"`
	Cache string `toml:"cache_path"`
}

// DefaultLayout is what forge uses when foundry.toml does not say.
var DefaultLayout = Layout{
	Src:   "src",
	Out:   "out",
	Test:  "test",
	Cache: "cache",
}

type foundryConfig struct {
	Profile struct {
		Default Layout `toml:"default"`
	} `toml:"profile"`
}

// foundry.toml carries many settings blacksmith does not care about.
var tomlSettings = func() toml.Config {
	cfg := toml.DefaultConfig
	cfg.MissingField = func(rt reflect.Type, field string) error { return nil }
	return cfg
}()

// LoadLayout reads the default profile of <root>/foundry.toml. A missing
// file yields DefaultLayout; missing keys keep their defaults.
func LoadLayout(root string) (Layout, error) {
	file := filepath.Join(root, FoundryFile)
	content, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultLayout, nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", FoundryFile, err)
	}

	var cfg foundryConfig
	if err := tomlSettings.Unmarshal(content, &cfg); err != nil {
		return Layout{}, fmt.Errorf("parse %s: %w", FoundryFile, err)
	}
	return cfg.Profile.Default.withDefaults(), nil
}

func (l Layout) withDefaults() Layout {
	if l.Src == "" {
		l.Src = DefaultLayout.Src
	}
	if l.Out == "" {
		l.Out = DefaultLayout.Out
	}
	if l.Test == "" {
		l.Test = DefaultLayout.Test
	}
	if l.Cache == "" {
		l.Cache = DefaultLayout.Cache
	}
	return l
}
