package forge

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/blacksmith-sol/blacksmith/gen"
)

// DefaultCacheFile is the cache index file inside the cache directory.
const DefaultCacheFile = "solidity-files-cache.json"

type cacheIndex struct {
	Files map[string]cacheEntry `json:"files"`
}

type cacheEntry struct {
	SourceName string                     `json:"sourceName"`
	Artifacts  map[string]json.RawMessage `json:"artifacts"`
}

// SourceFilter selects which cached sources are wrapped.
type SourceFilter struct {
	// SourceDir keeps only sources below this directory ("src").
	SourceDir string
	// SkipDirs drops sources below any of these directories.
	SkipDirs []string
}

func under(p, dir string) bool {
	dir = strings.Trim(path.Clean(dir), "/")
	if dir == "" || dir == "." {
		return true
	}
	return strings.HasPrefix(path.Clean(p), dir+"/")
}

// Keep reports whether the source at p passes the filter.
func (f SourceFilter) Keep(p string) bool {
	if !under(p, f.SourceDir) {
		return false
	}
	for _, d := range f.SkipDirs {
		if d != "" && under(p, d) {
			return false
		}
	}
	return true
}

// ReadCache parses the cache index at file and returns one Target per
// contract artifact whose source passes filter, sorted by source and name.
func ReadCache(file string, filter SourceFilter) ([]gen.Target, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	var index cacheIndex
	if err := json.Unmarshal(content, &index); err != nil {
		return nil, fmt.Errorf("parse cache %s: %w", file, err)
	}

	var targets []gen.Target
	for key, entry := range index.Files {
		source := entry.SourceName
		if source == "" {
			source = key
		}
		if !filter.Keep(source) {
			continue
		}
		for name := range entry.Artifacts {
			targets = append(targets, gen.Target{Name: name, Source: source})
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Source != targets[j].Source {
			return targets[i].Source < targets[j].Source
		}
		return targets[i].Name < targets[j].Name
	})
	return targets, nil
}
