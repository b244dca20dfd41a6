package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cute/internal/config"
	"cute/internal/discovery"
	"cute/internal/harness"
	"cute/internal/history"
	"cute/internal/storage"
	"cute/internal/ui"
	"cute/pkg/engine"
	"cute/pkg/selection"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	storage   storage.Storage
	formatter *ui.Formatter
	archive   *history.Archive
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	st storage.Storage,
	formatter *ui.Formatter,
	archive *history.Archive,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		storage:   st,
		formatter: formatter,
		archive:   archive,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	spec, _, err := loadSpec(rc.config, rc.scanner)
	if err != nil {
		return err
	}

	script, err := harness.LoadScript(args[0])
	if err != nil {
		return err
	}
	if len(script.Events) == 0 {
		color.Yellow("No test blocks in script")
		return nil
	}

	eng := engine.New(spec, !rc.config.Flags.NoSelect)

	// A pass-through engine emits no counter updates, so the bar would
	// never move; skip it there and in json-only mode, which must stay
	// quiet for pipelines.
	var progressBar *ui.ProgressBar
	if rc.config.Flags.Verbose {
		eng.SetTrace(rc.formatter.PrintDecision)
	} else if !rc.config.Flags.NoSelect && !rc.config.Flags.JSONOnly {
		progressBar = ui.NewProgressBar(len(script.Events))
		eng.SetProgress(progressBar)
	}

	player := harness.NewPlayer(eng)
	executed, skipped, elapsed := player.Play(script)
	if progressBar != nil {
		progressBar.Finish()
	}

	if rc.config.Flags.NoSelect {
		color.Green("\nPass-through mode: %d test block(s) executed, nothing counted", executed)
		return nil
	}

	report := player.Report(script, elapsed)
	if !rc.config.Flags.JSONOnly {
		if err := rc.formatter.PrintReport(report); err != nil {
			return err
		}
		fmt.Println()
		color.White("%d executed, %d skipped", executed, skipped)
	}

	if err := rc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}

	if rc.config.Flags.Record {
		if err := rc.archive.Record(report); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	return nil
}

// loadSpec loads the selection spec from the explicit -c paths, or from
// discovered *.cute files when none were given. No config files at all
// is fine: the spec is empty and every test runs.
func loadSpec(cfg *config.Config, scanner *discovery.Scanner) (*selection.Spec, []string, error) {
	paths := cfg.Flags.ConfigPaths
	if len(paths) == 0 {
		discovered, err := scanner.Scan(cfg.ProjectPath)
		if err != nil {
			return nil, nil, err
		}
		paths = discovered
	}

	spec, err := selection.Load(paths)
	if err != nil {
		return nil, nil, err
	}
	return spec, paths, nil
}
