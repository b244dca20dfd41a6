package engine

import "time"

// ModuleRecord tracks outcomes for one module during a run. Records are
// created lazily on the first event for the module and keep a stable
// identity for the run's duration.
type ModuleRecord struct {
	Name     string
	Found    int
	Passing  int
	Failing  int
	UsesHook bool
	Elapsed  time.Duration
}

// Registry is the mutable per-run counter state: one record per module
// plus the run-wide aggregate. It is owned by a single Engine and must
// not be shared across callers.
type Registry struct {
	records map[string]*ModuleRecord
	order   []string

	found   int
	passing int
	failing int
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*ModuleRecord)}
}

// GetOrCreate returns the record for the module, inserting an empty one
// on first use. First-seen order is preserved for display.
func (r *Registry) GetOrCreate(module string) *ModuleRecord {
	if rec, ok := r.records[module]; ok {
		return rec
	}
	rec := &ModuleRecord{Name: module}
	r.records[module] = rec
	r.order = append(r.order, module)
	return rec
}

// Records returns all module records in first-seen order.
func (r *Registry) Records() []*ModuleRecord {
	out := make([]*ModuleRecord, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.records[name])
	}
	return out
}

// Totals returns the aggregate found, passing and failing counts.
func (r *Registry) Totals() (found, passing, failing int) {
	return r.found, r.passing, r.failing
}
