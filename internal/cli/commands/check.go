package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cute/internal/config"
	"cute/internal/discovery"
	"cute/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config, scanner *discovery.Scanner, formatter *ui.Formatter) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	spec, sources, err := loadSpec(cc.config, cc.scanner)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		color.Yellow("No selection config files found")
	}

	return cc.formatter.PrintSpec(spec, sources)
}
