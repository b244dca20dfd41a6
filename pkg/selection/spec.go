package selection

import (
	"sort"
	"strings"
)

// EntryKind classifies a configuration entry
type EntryKind int

const (
	// ModuleInclude selects every test block in the named module
	ModuleInclude EntryKind = iota
	// ModuleExclude skips every test block in the named module
	ModuleExclude
	// TestInclude selects test blocks with the given name in any module
	TestInclude
	// TestExclude skips test blocks with the given name in any module
	TestExclude
)

// Entry is a single parsed selection entry
type Entry struct {
	Kind  EntryKind
	Value string
}

// UnknownEntry is a configuration line that matched no known prefix.
// It is kept for diagnostic display only and never affects selection.
type UnknownEntry struct {
	Raw    string `json:"raw"`
	Source string `json:"source"`
}

// Spec is the merged, immutable selection configuration for one run.
// Build it with NewSpec or Load; afterwards it is read-only.
type Spec struct {
	includedModules map[string]struct{}
	excludedModules map[string]struct{}
	includedTests   map[string]struct{}
	excludedTests   map[string]struct{}
	unknown         []UnknownEntry
}

// NewSpec builds a Spec from parsed entries. Duplicate values collapse
// and blank values are dropped.
func NewSpec(entries []Entry, unknown []UnknownEntry) *Spec {
	s := &Spec{
		includedModules: make(map[string]struct{}),
		excludedModules: make(map[string]struct{}),
		includedTests:   make(map[string]struct{}),
		excludedTests:   make(map[string]struct{}),
	}
	for _, e := range entries {
		value := strings.TrimSpace(e.Value)
		if value == "" {
			continue
		}
		switch e.Kind {
		case ModuleInclude:
			s.includedModules[value] = struct{}{}
		case ModuleExclude:
			s.excludedModules[value] = struct{}{}
		case TestInclude:
			s.includedTests[value] = struct{}{}
		case TestExclude:
			s.excludedTests[value] = struct{}{}
		}
	}
	s.unknown = append(s.unknown, unknown...)
	return s
}

// Empty reports whether the spec carries no include or exclude entries
// of any kind. Unknown entries do not count.
func (s *Spec) Empty() bool {
	return len(s.includedModules) == 0 &&
		len(s.excludedModules) == 0 &&
		len(s.includedTests) == 0 &&
		len(s.excludedTests) == 0
}

// IncludesModule reports whether the module is explicitly included.
func (s *Spec) IncludesModule(name string) bool {
	_, ok := s.includedModules[name]
	return ok
}

// ExcludesModule reports whether the module is explicitly excluded.
func (s *Spec) ExcludesModule(name string) bool {
	_, ok := s.excludedModules[name]
	return ok
}

// IncludesTest reports whether the test name is explicitly included.
func (s *Spec) IncludesTest(name string) bool {
	_, ok := s.includedTests[name]
	return ok
}

// ExcludesTest reports whether the test name is explicitly excluded.
func (s *Spec) ExcludesTest(name string) bool {
	_, ok := s.excludedTests[name]
	return ok
}

// HasModuleIncludes reports whether any module include entries exist.
func (s *Spec) HasModuleIncludes() bool { return len(s.includedModules) > 0 }

// HasTestIncludes reports whether any test include entries exist.
func (s *Spec) HasTestIncludes() bool { return len(s.includedTests) > 0 }

// IncludedModules returns the included module names, sorted.
func (s *Spec) IncludedModules() []string { return sortedKeys(s.includedModules) }

// ExcludedModules returns the excluded module names, sorted.
func (s *Spec) ExcludedModules() []string { return sortedKeys(s.excludedModules) }

// IncludedTests returns the included test names, sorted.
func (s *Spec) IncludedTests() []string { return sortedKeys(s.includedTests) }

// ExcludedTests returns the excluded test names, sorted.
func (s *Spec) ExcludedTests() []string { return sortedKeys(s.excludedTests) }

// Unknown returns the unrecognized configuration lines in the order
// they were read.
func (s *Spec) Unknown() []UnknownEntry {
	out := make([]UnknownEntry, len(s.unknown))
	copy(out, s.unknown)
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
