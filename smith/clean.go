package smith

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/blacksmith-sol/blacksmith/gen"
	"github.com/blacksmith-sol/blacksmith/ui"
)

// IsGenerated reports whether a file name is one blacksmith writes.
func IsGenerated(name string) bool {
	return name == gen.SupportFileName || strings.HasSuffix(name, gen.UnitSuffix)
}

// foreignFiles lists files under dir that blacksmith did not write.
func foreignFiles(dir string) ([]string, error) {
	var foreign []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() && IsGenerated(d.Name()) && filepath.Dir(p) == dir {
			return nil
		}
		rel, _ := filepath.Rel(dir, p)
		foreign = append(foreign, filepath.ToSlash(rel))
		return nil
	})
	return foreign, err
}

// Clean removes the output directory. When it holds files blacksmith did
// not generate the user has to confirm unless assumeYes is set. It reports
// whether anything was removed.
func (s *Smith) Clean(assumeYes bool) (bool, error) {
	dir := s.OutputPath()
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		s.UI.Info("%s", ui.Tagged("clean", "nothing to clean"))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat output directory: %w", err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("output %s is not a directory", s.Settings.Output)
	}

	foreign, err := foreignFiles(dir)
	if err != nil {
		return false, fmt.Errorf("scan output directory: %w", err)
	}
	if len(foreign) > 0 && !assumeYes {
		s.UI.Critical("%s contains files blacksmith did not generate:", s.Settings.Output)
		in := s.UI.Indent()
		for _, f := range foreign {
			in.Warn("%s", f)
		}
		if !s.UI.Confirm("Remove them anyway?", false) {
			s.UI.Info("%s", ui.Tagged("clean", "aborted"))
			return false, nil
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("remove output directory: %w", err)
	}
	s.UI.Success("%s", ui.Tagged("clean", "completed"))
	return true, nil
}
