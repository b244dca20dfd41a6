package commands

import (
	"github.com/spf13/cobra"

	"cute/internal/config"
	"cute/internal/history"
	"cute/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	archive   *history.Archive
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, archive *history.Archive, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		archive:   archive,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	runs, err := hc.archive.List(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	return hc.formatter.PrintHistory(runs)
}
