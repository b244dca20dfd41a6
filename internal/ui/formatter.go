package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cute/internal/config"
	"cute/internal/history"
	"cute/pkg/engine"
	"cute/pkg/selection"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintReport displays a run report: summary table, per-module counts
// and the categorized module lists.
func (f *Formatter) PrintReport(report *engine.Report) error {
	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Test Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print summary table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Mode")
	color.White("%-27s │\n", report.Mode)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Found Test Blocks")
	color.White("%-27d │\n", report.Aggregate.Found)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passing")
	color.Green("%-27d │\n", report.Aggregate.Passing)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failing")
	color.Red("%-27d │\n", report.Aggregate.Failing)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", report.DurationSeconds)
	color.White("%-27s │\n", durationStr)

	if report.Timestamp != "" {
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		fmt.Printf("│ %-31s │ ", "Timestamp")
		color.White("%-27s │\n", report.Timestamp)
	}

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	f.printSelections(report.Selections)
	f.printModules(report.Modules)
	f.printModuleLists(report)

	fmt.Println()
	if report.Aggregate.Failing == 0 {
		color.Green("✓ All executed tests passed!")
	} else {
		color.Red("✗ %d test block(s) failed", report.Aggregate.Failing)
	}

	return nil
}

// printSelections echoes the active selection configuration.
func (f *Formatter) printSelections(sel engine.Selections) {
	if len(sel.Modules) == 0 && len(sel.ExcludedModules) == 0 &&
		len(sel.Tests) == 0 && len(sel.ExcludedTests) == 0 && len(sel.Unknown) == 0 {
		return
	}

	fmt.Println()
	color.Cyan("Selections:")
	if len(sel.Modules) > 0 {
		fmt.Printf("  modules:          %s\n", strings.Join(sel.Modules, ", "))
	}
	if len(sel.ExcludedModules) > 0 {
		fmt.Printf("  excluded modules: %s\n", strings.Join(sel.ExcludedModules, ", "))
	}
	if len(sel.Tests) > 0 {
		fmt.Printf("  tests:            %s\n", strings.Join(sel.Tests, ", "))
	}
	if len(sel.ExcludedTests) > 0 {
		fmt.Printf("  excluded tests:   %s\n", strings.Join(sel.ExcludedTests, ", "))
	}
	f.printUnknown(sel.Unknown)
}

func (f *Formatter) printUnknown(unknown []selection.UnknownEntry) {
	if len(unknown) == 0 {
		return
	}
	color.Yellow("  unrecognized config lines:")
	for _, u := range unknown {
		color.Yellow("    %s (%s)", u.Raw, u.Source)
	}
}

// printModules prints one line per module in first-seen order.
func (f *Formatter) printModules(modules []engine.ModuleLine) {
	if len(modules) == 0 {
		return
	}

	fmt.Println()
	color.Cyan("Modules:")
	for i, m := range modules {
		connector := "├──"
		if i == len(modules)-1 {
			connector = "└──"
		}
		counts := fmt.Sprintf("%s passing, %s failing, %d found",
			color.GreenString("%d", m.Passing),
			color.RedString("%d", m.Failing),
			m.Found)
		if m.DurationSeconds > 0 {
			counts += fmt.Sprintf(" (%.2fs)", m.DurationSeconds)
		}
		fmt.Printf("%s %s: %s\n", connector, color.CyanString(m.Name), counts)
	}
}

func (f *Formatter) printModuleLists(report *engine.Report) {
	printList := func(label string, names []string) {
		if len(names) == 0 {
			return
		}
		fmt.Printf("%s %s\n", color.CyanString(label+":"), strings.Join(names, ", "))
	}

	fmt.Println()
	printList("Modules with tests", report.ModulesWithTests)
	printList("Modules without tests", report.ModulesWithoutTests)
	printList("Modules excluded", report.ModulesExcluded)
}

// PrintSpec displays a parsed selection spec, for the check command.
func (f *Formatter) PrintSpec(spec *selection.Spec, sources []string) error {
	color.Cyan("Selection configuration (%d file(s)):", len(sources))
	for _, src := range sources {
		fmt.Printf("  %s\n", src)
	}
	fmt.Println()

	if spec.Empty() {
		color.Green("No selections configured: every test block will run (mode: all)")
	} else {
		color.Green("Mode: selection")
		printSet := func(label string, names []string) {
			if len(names) == 0 {
				return
			}
			fmt.Printf("  %-17s %s\n", label+":", strings.Join(names, ", "))
		}
		printSet("modules", spec.IncludedModules())
		printSet("excluded modules", spec.ExcludedModules())
		printSet("tests", spec.IncludedTests())
		printSet("excluded tests", spec.ExcludedTests())
	}

	if unknown := spec.Unknown(); len(unknown) > 0 {
		fmt.Println()
		color.Yellow("Unrecognized lines (ignored):")
		for _, u := range unknown {
			color.Yellow("  %s (%s)", u.Raw, u.Source)
		}
	}

	return nil
}

// PrintDecision prints one verbose trace line for a begin decision.
func (f *Formatter) PrintDecision(module, test string, line int, executed bool) {
	if executed {
		fmt.Printf("%s %s.%s (line %d)\n", color.GreenString("run "), module, test, line)
	} else {
		fmt.Printf("%s %s.%s (line %d)\n", color.YellowString("skip"), module, test, line)
	}
}

// PrintHistory prints archived run summaries, newest first.
func (f *Formatter) PrintHistory(runs []history.RunSummary) error {
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	color.Cyan("%-6s %-20s %-10s %8s %8s %8s %10s", "ID", "Timestamp", "Mode", "Found", "Passing", "Failing", "Duration")
	for _, run := range runs {
		failing := fmt.Sprintf("%8d", run.Failing)
		if run.Failing > 0 {
			failing = color.RedString("%8d", run.Failing)
		}
		fmt.Printf("%-6d %-20s %-10s %8d %s %s %9.2fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Mode,
			run.Found,
			color.GreenString("%8d", run.Passing),
			failing,
			run.DurationSeconds,
		)
	}
	return nil
}
