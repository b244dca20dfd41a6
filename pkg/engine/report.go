package engine

import (
	"sort"
	"time"

	"cute/pkg/selection"
)

// ModuleLine is one module's row in the report, in first-seen order.
type ModuleLine struct {
	Name            string  `json:"name"`
	Passing         int     `json:"passing"`
	Failing         int     `json:"failing"`
	Found           int     `json:"found"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Counters is the run-wide aggregate.
type Counters struct {
	Found   int `json:"found"`
	Passing int `json:"passing"`
	Failing int `json:"failing"`
}

// Selections echoes the active configuration for display.
type Selections struct {
	Modules         []string                 `json:"modules,omitempty"`
	ExcludedModules []string                 `json:"excluded_modules,omitempty"`
	Tests           []string                 `json:"tests,omitempty"`
	ExcludedTests   []string                 `json:"excluded_tests,omitempty"`
	Unknown         []selection.UnknownEntry `json:"unknown,omitempty"`
}

// Report is the read-only snapshot assembled at run end. It carries no
// formatting; renderers and the storage layer consume this contract.
type Report struct {
	Mode                string      `json:"mode"`
	Selections          Selections  `json:"selections"`
	Modules             []ModuleLine `json:"modules"`
	Aggregate           Counters    `json:"aggregate"`
	ModulesWithTests    []string    `json:"modules_with_tests"`
	ModulesWithoutTests []string    `json:"modules_without_tests"`
	ModulesExcluded     []string    `json:"modules_excluded"`
	Duration            string      `json:"duration"`
	DurationSeconds     float64     `json:"duration_seconds"`

	// Timestamp is stamped by whoever persists the report; the engine
	// itself never reads a clock.
	Timestamp string `json:"timestamp,omitempty"`
}

// Report assembles the run's report. elapsed is the total wall time
// measured by the host; knownModules is the host-supplied enumeration
// of every module in the suite, used to compute the modules that never
// reported a test (the engine cannot see modules it was never invoked
// for). Modules excluded by the spec are listed from the configuration
// alone, whether or not any event was seen for them.
func (e *Engine) Report(elapsed time.Duration, knownModules []string) *Report {
	records := e.registry.Records()
	found, passing, failing := e.registry.Totals()

	lines := make([]ModuleLine, 0, len(records))
	withTests := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		lines = append(lines, ModuleLine{
			Name:            rec.Name,
			Passing:         rec.Passing,
			Failing:         rec.Failing,
			Found:           rec.Found,
			DurationSeconds: rec.Elapsed.Seconds(),
		})
		if rec.Found > 0 {
			withTests = append(withTests, rec.Name)
			seen[rec.Name] = struct{}{}
		}
	}
	sort.Strings(withTests)

	excluded := e.spec.ExcludedModules()
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		excludedSet[name] = struct{}{}
	}

	var withoutTests []string
	for _, name := range knownModules {
		if _, ok := seen[name]; ok {
			continue
		}
		if _, ok := excludedSet[name]; ok {
			continue
		}
		withoutTests = append(withoutTests, name)
	}
	sort.Strings(withoutTests)

	return &Report{
		Mode: e.Mode().String(),
		Selections: Selections{
			Modules:         e.spec.IncludedModules(),
			ExcludedModules: e.spec.ExcludedModules(),
			Tests:           e.spec.IncludedTests(),
			ExcludedTests:   e.spec.ExcludedTests(),
			Unknown:         e.spec.Unknown(),
		},
		Modules:             lines,
		Aggregate:           Counters{Found: found, Passing: passing, Failing: failing},
		ModulesWithTests:    withTests,
		ModulesWithoutTests: withoutTests,
		ModulesExcluded:     excluded,
		Duration:            elapsed.String(),
		DurationSeconds:     elapsed.Seconds(),
	}
}
