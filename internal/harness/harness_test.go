package harness

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cute/pkg/engine"
	"cute/pkg/selection"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "run.script")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	t.Run("parses modules and events", func(t *testing.T) {
		path := writeScript(t, `
# a recorded run
module math
module io

math add pass 12ms
math sub fail
io read pass
`)
		script, err := LoadScript(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(script.Modules) != 2 {
			t.Errorf("expected 2 modules, got %d: %v", len(script.Modules), script.Modules)
		}
		if len(script.Events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(script.Events))
		}

		first := script.Events[0]
		if first.Module != "math" || first.Test != "add" || first.Failed {
			t.Errorf("unexpected first event: %+v", first)
		}
		if first.Elapsed != 12*time.Millisecond {
			t.Errorf("expected 12ms, got %v", first.Elapsed)
		}
		if !script.Events[1].Failed {
			t.Error("expected second event to be a failure")
		}
	})

	t.Run("modules implied by events", func(t *testing.T) {
		path := writeScript(t, "math add pass\n")
		script, err := LoadScript(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(script.Modules) != 1 || script.Modules[0] != "math" {
			t.Errorf("expected implied module math, got %v", script.Modules)
		}
	})

	t.Run("event lines carry their line number", func(t *testing.T) {
		path := writeScript(t, "# comment\n\nmath add pass\n")
		script, err := LoadScript(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if script.Events[0].Line != 3 {
			t.Errorf("expected line 3, got %d", script.Events[0].Line)
		}
	})

	malformed := []struct {
		name    string
		content string
	}{
		{"bad outcome", "math add maybe\n"},
		{"too few fields", "math add\n"},
		{"bad duration", "math add pass 12parsecs\n"},
		{"module without name", "module\n"},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript(writeScript(t, tt.content)); err == nil {
				t.Error("expected error for malformed script")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadScript("/non/existent/run.script"); err == nil {
			t.Error("expected error for missing script")
		}
	})
}

func TestPlayer_Play(t *testing.T) {
	t.Run("replays events through the engine", func(t *testing.T) {
		path := writeScript(t, `
module unused

math add pass 10ms
math sub fail 5ms
io read pass
`)
		script, err := LoadScript(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		eng := engine.New(selection.NewSpec(nil, nil), true)
		player := NewPlayer(eng)

		executed, skipped, elapsed := player.Play(script)
		if executed != 3 || skipped != 0 {
			t.Errorf("expected 3 executed, 0 skipped, got %d/%d", executed, skipped)
		}

		report := player.Report(script, elapsed)
		if report.Aggregate.Found != 3 || report.Aggregate.Passing != 2 || report.Aggregate.Failing != 1 {
			t.Errorf("expected aggregate {3,2,1}, got %+v", report.Aggregate)
		}

		// The declared-but-silent module shows up as having no tests.
		if len(report.ModulesWithoutTests) != 1 || report.ModulesWithoutTests[0] != "unused" {
			t.Errorf("expected [unused], got %v", report.ModulesWithoutTests)
		}

		// Script durations accumulate on the module records.
		for _, m := range report.Modules {
			if m.Name == "math" && m.DurationSeconds != 0.015 {
				t.Errorf("expected math duration 0.015s, got %v", m.DurationSeconds)
			}
		}
	})

	t.Run("selection skips blocks", func(t *testing.T) {
		path := writeScript(t, "math add pass\nmath sub pass\nio read pass\n")
		script, err := LoadScript(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spec := selection.NewSpec([]selection.Entry{
			{Kind: selection.TestInclude, Value: "add"},
		}, nil)
		player := NewPlayer(engine.New(spec, true))

		executed, skipped, _ := player.Play(script)
		if executed != 1 || skipped != 2 {
			t.Errorf("expected 1 executed, 2 skipped, got %d/%d", executed, skipped)
		}
	})
}
