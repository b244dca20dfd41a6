package engine

import (
	"time"

	"cute/pkg/selection"
)

// Outcome is the result the harness reports for an executed test block
type Outcome int

const (
	// Passed means the block body completed normally
	Passed Outcome = iota
	// Failed means the block body failed or exited abnormally
	Failed
)

// Mode is the run's selection mode
type Mode int

const (
	// ModeAll runs every test block (no filters configured)
	ModeAll Mode = iota
	// ModeSelection runs only the configured selection
	ModeSelection
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeSelection {
		return "selection"
	}
	return "all"
}

// Progress receives counter updates after each begin/end event, for
// live display during a run.
type Progress interface {
	Update(found, passing, failing int)
}

// TraceFunc observes each begin decision: the block's module, test
// name, source line and whether it will execute.
type TraceFunc func(module, test string, line int, executed bool)

// Engine decides, per test block, whether the block executes, and
// tracks outcomes per module and in aggregate. One instance is
// constructed per run and driven strictly sequentially by the host
// harness: at most one BeginTest/EndTest pair is ever in flight, so no
// locking is needed.
type Engine struct {
	spec      *selection.Spec
	selective bool
	registry  *Registry
	progress  Progress
	trace     TraceFunc
}

// New creates an Engine for one run. When selective is false the engine
// is a pass-through: BeginTest always returns true and nothing is
// counted, matching the host's non-selective build.
func New(spec *selection.Spec, selective bool) *Engine {
	if spec == nil {
		spec = selection.NewSpec(nil, nil)
	}
	return &Engine{
		spec:      spec,
		selective: selective,
		registry:  NewRegistry(),
	}
}

// SetProgress attaches a live progress listener.
func (e *Engine) SetProgress(p Progress) {
	e.progress = p
}

// SetTrace attaches a per-decision trace callback.
func (e *Engine) SetTrace(fn TraceFunc) {
	e.trace = fn
}

// Spec returns the selection configuration the engine was built with.
func (e *Engine) Spec() *selection.Spec { return e.spec }

// Mode returns ModeSelection when at least one include or exclude entry
// is configured, ModeAll otherwise.
func (e *Engine) Mode() Mode {
	if e.selective && !e.spec.Empty() {
		return ModeSelection
	}
	return ModeAll
}

// Registry exposes the run's counter state, e.g. for tests or custom
// renderers. Callers must not mutate it.
func (e *Engine) Registry() *Registry { return e.registry }

// BeginTest is called by the harness before running a test block's
// body. A false result means the body must not run. Every call counts
// toward Found regardless of the decision; an execute decision
// optimistically counts the block as passing until EndTest corrects it.
func (e *Engine) BeginTest(module, test string, line int) bool {
	if !e.selective {
		return true
	}

	rec := e.registry.GetOrCreate(module)
	rec.UsesHook = true
	rec.Found++
	e.registry.found++

	executed := e.decide(module, test)
	if executed {
		rec.Passing++
		e.registry.passing++
	}

	if e.trace != nil {
		e.trace(module, test, line, executed)
	}
	e.notify()
	return executed
}

// decide applies the selection rules. Exclusion dominates inclusion;
// a spec carrying only exclusions default-allows everything else.
func (e *Engine) decide(module, test string) bool {
	if e.spec.Empty() {
		return true
	}
	switch {
	case e.spec.ExcludesModule(module) || e.spec.ExcludesTest(test):
		return false
	case e.spec.HasModuleIncludes() && e.spec.IncludesModule(module):
		return true
	case e.spec.HasTestIncludes() && e.spec.IncludesTest(test):
		return true
	case !e.spec.HasModuleIncludes() && !e.spec.HasTestIncludes():
		return true
	default:
		return false
	}
}

// EndTest is called by the harness after running a block's body, only
// when BeginTest returned true. A Passed outcome is a no-op (the block
// was already counted as passing); Failed moves the block from passing
// to failing, for the module and the aggregate.
func (e *Engine) EndTest(module string, outcome Outcome) {
	if !e.selective || outcome != Failed {
		return
	}
	rec := e.registry.GetOrCreate(module)
	rec.Passing--
	rec.Failing++
	e.registry.passing--
	e.registry.failing++
	e.notify()
}

// RecordElapsed accumulates an externally measured duration on the
// module's record. The engine itself never reads a clock.
func (e *Engine) RecordElapsed(module string, d time.Duration) {
	if !e.selective {
		return
	}
	e.registry.GetOrCreate(module).Elapsed += d
}

func (e *Engine) notify() {
	if e.progress == nil {
		return
	}
	found, passing, failing := e.registry.Totals()
	e.progress.Update(found, passing, failing)
}
