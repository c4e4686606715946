package cmd

import (
	"github.com/blacksmith-sol/blacksmith/config"
	"github.com/blacksmith-sol/blacksmith/smith"
	"github.com/blacksmith-sol/blacksmith/ui"
)

// newSmith resolves the project settings from files and flags.
func newSmith(u ui.UI) (*smith.Smith, error) {
	settings, err := config.Resolve(config.ProjectRoot, config.CurrentFlags())
	if err != nil {
		return nil, err
	}
	return smith.New(settings, nil, u), nil
}
