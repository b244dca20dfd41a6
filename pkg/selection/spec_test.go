package selection

import "testing"

func TestNewSpec(t *testing.T) {
	t.Run("empty spec", func(t *testing.T) {
		spec := NewSpec(nil, nil)
		if !spec.Empty() {
			t.Error("expected spec with no entries to be empty")
		}
		if spec.HasModuleIncludes() || spec.HasTestIncludes() {
			t.Error("expected no includes")
		}
	})

	t.Run("unknown entries do not make the spec non-empty", func(t *testing.T) {
		spec := NewSpec(nil, []UnknownEntry{{Raw: "junk", Source: "a.cute"}})
		if !spec.Empty() {
			t.Error("expected spec with only unknown entries to be empty")
		}
		if len(spec.Unknown()) != 1 {
			t.Errorf("expected 1 unknown entry, got %d", len(spec.Unknown()))
		}
	})

	t.Run("blank values dropped", func(t *testing.T) {
		spec := NewSpec([]Entry{
			{Kind: TestInclude, Value: ""},
			{Kind: ModuleInclude, Value: "   "},
		}, nil)
		if !spec.Empty() {
			t.Error("expected blank values to be dropped")
		}
	})

	t.Run("set queries", func(t *testing.T) {
		spec := NewSpec([]Entry{
			{Kind: ModuleInclude, Value: "math"},
			{Kind: ModuleExclude, Value: "io"},
			{Kind: TestInclude, Value: "add"},
			{Kind: TestExclude, Value: "sub"},
		}, nil)

		if !spec.IncludesModule("math") || spec.IncludesModule("io") {
			t.Error("module include set is wrong")
		}
		if !spec.ExcludesModule("io") || spec.ExcludesModule("math") {
			t.Error("module exclude set is wrong")
		}
		if !spec.IncludesTest("add") || spec.IncludesTest("sub") {
			t.Error("test include set is wrong")
		}
		if !spec.ExcludesTest("sub") || spec.ExcludesTest("add") {
			t.Error("test exclude set is wrong")
		}
	})

	t.Run("echo lists are sorted", func(t *testing.T) {
		spec := NewSpec([]Entry{
			{Kind: TestInclude, Value: "zeta"},
			{Kind: TestInclude, Value: "alpha"},
			{Kind: TestInclude, Value: "mid"},
		}, nil)

		got := spec.IncludedTests()
		want := []string{"alpha", "mid", "zeta"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected sorted %v, got %v", want, got)
			}
		}
	})
}
