package selection

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config load failures. Malformed content is never an error; it only
// produces unknown entries.
var (
	// ErrNotFound means a supplied configuration path does not exist
	ErrNotFound = errors.New("config file does not exist")
	// ErrReadFailed means an existing configuration path could not be read
	ErrReadFailed = errors.New("config file read failed")
)

// prefix to entry kind, checked in order against each trimmed line
var prefixKinds = []struct {
	prefix string
	kind   EntryKind
}{
	{"xutb:", TestExclude},
	{"xutm:", ModuleExclude},
	{"utb:", TestInclude},
	{"utm:", ModuleInclude},
}

// Load reads the given configuration files and merges them into a
// single Spec (set union per entry kind). Duplicates collapse silently
// and an entry's kind never depends on which file it came from.
func Load(paths []string) (*Spec, error) {
	var entries []Entry
	var unknown []UnknownEntry

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if entry, ok := classify(line); ok {
				entries = append(entries, entry)
			} else {
				unknown = append(unknown, UnknownEntry{Raw: line, Source: path})
			}
		}
		scanErr := scanner.Err()
		f.Close()
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, scanErr)
		}
	}

	return NewSpec(entries, unknown), nil
}

// classify matches a trimmed non-empty line against the known prefixes.
// The prefix may be followed directly by the value or by a space; the
// value is the trimmed remainder. A blank remainder yields no entry but
// still counts as recognized (it is silently dropped, not diagnosed).
func classify(line string) (Entry, bool) {
	for _, pk := range prefixKinds {
		if strings.HasPrefix(line, pk.prefix) {
			value := strings.TrimSpace(strings.TrimPrefix(line, pk.prefix))
			return Entry{Kind: pk.kind, Value: value}, true
		}
	}
	return Entry{}, false
}
