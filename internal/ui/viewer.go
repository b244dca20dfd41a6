package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cute/internal/config"
	"cute/pkg/engine"
)

// Viewer displays a run report in an interactive TUI: module list on
// the left, per-module details on the right.
type Viewer struct {
	config *config.Config
}

// NewViewer creates a new Viewer
func NewViewer(cfg *config.Config) *Viewer {
	return &Viewer{config: cfg}
}

// View opens the interactive report browser.
func (v *Viewer) View(report *engine.Report) error {
	if len(report.Modules) == 0 {
		color.Yellow("No modules in the report")
		return nil
	}

	app := tview.NewApplication()

	// visible maps list positions to report module indexes; it shrinks
	// when the failing-only filter is active.
	var visible []int
	failingOnly := false

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	listItemText := func(m engine.ModuleLine) string {
		if m.Failing > 0 {
			return fmt.Sprintf("[red]✗[white] %s [gray](%d/%d)[white]", m.Name, m.Passing, m.Found)
		}
		return fmt.Sprintf("[green]✓[white] %s [gray](%d/%d)[white]", m.Name, m.Passing, m.Found)
	}

	rebuildList := func() {
		list.Clear()
		visible = visible[:0]
		for i, m := range report.Modules {
			if failingOnly && m.Failing == 0 {
				continue
			}
			visible = append(visible, i)
			list.AddItem(listItemText(m), "", 0, nil)
		}
	}

	updateHeader := func() {
		headerText := fmt.Sprintf(" Test Report | mode: %s (%d modules, %d failing blocks) | Use ↑↓ to navigate, [yellow]F[white] to toggle failing only, → to view details, ← to go back, Ctrl+C to exit ",
			report.Mode, len(report.Modules), report.Aggregate.Failing)
		headerView.SetText(headerText)
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			detailsView.SetText("")
			return
		}
		m := report.Modules[visible[index]]
		detailsView.SetText(v.formatModuleDetails(report, m))
	}

	rebuildList()
	updateHeader()
	updateDetails()

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'f' || event.Rune() == 'F' {
				failingOnly = !failingOnly
				rebuildList()
				updateHeader()
				updateDetails()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatModuleDetails formats one module's counters for display using
// tview color tags ([red], [cyan], etc.)
func (v *Viewer) formatModuleDetails(report *engine.Report, m engine.ModuleLine) string {
	var builder strings.Builder

	if m.Failing > 0 {
		fmt.Fprintf(&builder, "[red]✗ Module: %s[white]\n\n", m.Name)
	} else {
		fmt.Fprintf(&builder, "[green]✓ Module: %s[white]\n\n", m.Name)
	}

	fmt.Fprintf(&builder, "[cyan]Found:[white]   %d\n", m.Found)
	fmt.Fprintf(&builder, "[green]Passing:[white] %d\n", m.Passing)
	fmt.Fprintf(&builder, "[red]Failing:[white] %d\n", m.Failing)
	if m.DurationSeconds > 0 {
		fmt.Fprintf(&builder, "[yellow]Elapsed:[white] %.2fs\n", m.DurationSeconds)
	}

	skipped := m.Found - m.Passing - m.Failing
	if skipped > 0 {
		fmt.Fprintf(&builder, "[gray]Skipped:[white] %d\n", skipped)
	}

	for _, name := range report.ModulesExcluded {
		if name == m.Name {
			fmt.Fprintf(&builder, "\n[yellow]Excluded by configuration[white]\n")
			break
		}
	}

	return builder.String()
}
