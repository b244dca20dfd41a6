package commands

import (
	"cute/internal/cli"
	"cute/internal/config"
	"cute/internal/discovery"
	"cute/internal/history"
	"cute/internal/storage"
	"cute/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Check   *CheckCommand
	Report  *ReportCommand
	History *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(config.DefaultPathsToIgnore, cfg.ConfigGlob)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	archive := history.NewArchive(cfg)
	viewer := ui.NewViewer(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, scanner, jsonStorage, formatter, archive),
		Check:   NewCheckCommand(cfg, scanner, formatter),
		Report:  NewReportCommand(cfg, jsonStorage, formatter, viewer),
		History: NewHistoryCommand(cfg, archive, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a recorded test script through the selection engine",
		Long:  "Load the selection configuration, replay the given test script through the engine one block at a time, and print the run report",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringSliceVarP(&flags.ConfigPaths, "config", "c", nil, "Selection config file (repeatable); defaults to *.cute files in the project dir")
	runCmd.Flags().BoolVar(&flags.NoSelect, "no-select", false, "Disable selective execution (every test block runs, nothing is counted)")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a run/skip line for every test block")
	runCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run summary to the MySQL history archive")
	runCmd.Flags().BoolVar(&flags.JSONOnly, "json-only", false, "Save the JSON report without printing the rendered report")
	rootCmd.AddCommand(runCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and display the selection configuration",
		Long:  "Load the selection config files and show the merged selections plus any unrecognized lines, without running anything",
		RunE:  c.Check.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	checkCmd.Flags().StringSliceVarP(&flags.ConfigPaths, "config", "c", nil, "Selection config file (repeatable); defaults to *.cute files in the project dir")
	rootCmd.AddCommand(checkCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Display the last run report",
		Long:  "Render the report saved by the last run, either as colored text or in an interactive viewer",
		RunE:  c.Report.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	reportCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the report in an interactive viewer")
	rootCmd.AddCommand(reportCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List recent run summaries from the MySQL history archive, newest first",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultHistoryLimit, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
