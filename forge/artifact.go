package forge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/blacksmith-sol/blacksmith/gen"
)

type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

// ArtifactPath returns where forge writes the artifact of t:
// <outDir>/<file name of source>/<Name>.json.
func ArtifactPath(outDir string, t gen.Target) string {
	return filepath.Join(outDir, path.Base(t.Source), t.Name+".json")
}

// LoadABI reads the ABI of t from its build artifact. A missing artifact
// yields an error wrapping ErrArtifactNotFound.
func LoadABI(outDir string, t gen.Target) (gen.Descriptor, error) {
	file := ArtifactPath(outDir, t)
	content, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, file)
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return ParseArtifact(content)
}

// ParseArtifact decodes the "abi" field of an artifact document.
func ParseArtifact(content []byte) (gen.Descriptor, error) {
	var a artifact
	if err := json.Unmarshal(content, &a); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if len(a.ABI) == 0 {
		return nil, errors.New("parse artifact: no abi field")
	}
	var abi gen.Descriptor
	if err := json.Unmarshal(a.ABI, &abi); err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}
	return abi, nil
}
