package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"cute/internal/cli"
	"cute/internal/config"
	"cute/internal/storage"
)

func TestRegister_RunFlags(t *testing.T) {
	rootCmd := &cobra.Command{Use: "cute"}
	cfg := config.New()
	var flags cli.Flags

	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	var runCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "run" {
			runCmd = cmd
		}
	}
	if runCmd == nil {
		t.Fatal("run command not registered")
	}

	for _, name := range []string{"config", "no-select", "verbose", "record", "json-only"} {
		flag := runCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected run command to define --%s", name)
			continue
		}
		if name != "config" && flag.DefValue != "false" {
			t.Errorf("expected --%s to default to false, got %s", name, flag.DefValue)
		}
	}
}

// captureStdout runs fn with os.Stdout redirected and returns what was
// written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(out)
}

func TestRunCommand_JSONOnly(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := filepath.Join(tmpDir, "run.script")
	script := "module math\nmath add pass\nmath sub fail\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	cfg.Flags = config.Flags{JSONOnly: true}

	cmds := NewCommands(cfg)

	var execErr error
	out := captureStdout(t, func() {
		execErr = cmds.Run.Execute(&cobra.Command{}, []string{scriptPath})
	})
	if execErr != nil {
		t.Fatalf("unexpected error: %v", execErr)
	}

	if strings.TrimSpace(out) != "" {
		t.Errorf("expected no rendered output in json-only mode, got %q", out)
	}

	// The report must still be saved.
	report, err := storage.NewJSONStorage(cfg).Load()
	if err != nil {
		t.Fatalf("expected a saved report: %v", err)
	}
	if report.Aggregate.Found != 2 || report.Aggregate.Passing != 1 || report.Aggregate.Failing != 1 {
		t.Errorf("expected aggregate {2,1,1}, got %+v", report.Aggregate)
	}
}

func TestRunCommand_RendersByDefault(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := filepath.Join(tmpDir, "run.script")
	if err := os.WriteFile(scriptPath, []byte("math add pass\n"), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	cfg := config.New()
	cfg.ProjectPath = tmpDir

	cmds := NewCommands(cfg)

	var execErr error
	out := captureStdout(t, func() {
		execErr = cmds.Run.Execute(&cobra.Command{}, []string{scriptPath})
	})
	if execErr != nil {
		t.Fatalf("unexpected error: %v", execErr)
	}

	if !strings.Contains(out, "Found Test Blocks") {
		t.Errorf("expected the rendered report on stdout, got %q", out)
	}
}
