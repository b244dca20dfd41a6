package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds selection config files in a directory tree
type Scanner struct {
	skipDirs map[string]bool
	glob     string
}

// NewScanner creates a new Scanner with the given directories to skip
// and the filename glob to match (e.g. "*.cute")
func NewScanner(skipDirs []string, glob string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, glob: glob}
}

// Scan finds all selection config files under the given root directory.
// Results are sorted so multi-file merges are deterministic.
func (s *Scanner) Scan(root string) ([]string, error) {
	var configs []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("config path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		matched, matchErr := filepath.Match(s.glob, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if matched {
			configs = append(configs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(configs)
	return configs, nil
}
