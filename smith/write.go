package smith

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"

	"github.com/blacksmith-sol/blacksmith/gen"
	"github.com/blacksmith-sol/blacksmith/ui"
)

// OutputPath is the absolute location of the output directory.
func (s *Smith) OutputPath() string {
	return s.Settings.Path(s.Settings.Output)
}

// Write stores the support unit and every unit in the output directory,
// creating it as needed. A unit that cannot be written is a failure; not
// being able to create the directory or the support unit is an error.
func (s *Smith) Write(units []Unit) ([]string, []Failure, error) {
	dir := s.OutputPath()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := writeFile(filepath.Join(dir, gen.SupportFileName), gen.SupportUnit()); err != nil {
		return nil, nil, err
	}
	written := []string{gen.SupportFileName}

	var failures []Failure
	for _, u := range units {
		name := u.FileName()
		if err := writeFile(filepath.Join(dir, name), u.Content); err != nil {
			failures = append(failures, Failure{Target: u.Target, Err: err})
			continue
		}
		written = append(written, name)
		s.UI.Success("%s", ui.Tagged("created", "%s", name))
	}
	return written, failures, nil
}

func writeFile(p, content string) error {
	log.Debug("Writing file", "path", p, "bytes", len(content))
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(p), err)
	}
	return nil
}
