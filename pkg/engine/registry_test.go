package engine

import "testing"

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry()

	t.Run("lazy insertion", func(t *testing.T) {
		if len(r.Records()) != 0 {
			t.Fatal("expected no records before first use")
		}
		rec := r.GetOrCreate("math")
		if rec.Name != "math" {
			t.Errorf("expected record name math, got %s", rec.Name)
		}
	})

	t.Run("stable identity", func(t *testing.T) {
		first := r.GetOrCreate("math")
		first.Found = 7
		second := r.GetOrCreate("math")
		if first != second {
			t.Error("expected the same record on repeated lookups")
		}
		if second.Found != 7 {
			t.Errorf("expected mutations to persist, got found=%d", second.Found)
		}
	})

	t.Run("first-seen order", func(t *testing.T) {
		r := NewRegistry()
		for _, name := range []string{"c", "a", "b", "a"} {
			r.GetOrCreate(name)
		}
		records := r.Records()
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		want := []string{"c", "a", "b"}
		for i, rec := range records {
			if rec.Name != want[i] {
				t.Errorf("expected order %v, got %s at %d", want, rec.Name, i)
			}
		}
	})
}
