package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"tfa/internal/domain"
)

// maxStderrLines caps the stderr excerpt in the details pane.
const maxStderrLines = 30

// FailureViewer displays classified failures in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View displays the classified failures in an interactive TUI, ordered by
// category group. Returns immediately when there is nothing to show.
func (fv *FailureViewer) View(groups []domain.CategoryGroup) error {
	var failures []domain.ClassifiedFailure
	for _, g := range groups {
		failures = append(failures, g.Failures...)
	}

	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	// Create list for failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, f := range failures {
		mainText := fmt.Sprintf("[yellow]%d.[white] %s [gray](%s)[white]", i+1, f.Result.TestName, f.Category)
		list.AddItem(mainText, "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (group/category of the selected failure)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Failure details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Failures (%d total, %d categories) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(failures), len(groups),
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			failure := failures[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

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

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failure for display using tview color tags ([red], [cyan], etc.)
func (fv *FailureViewer) formatFailureDetails(failure domain.ClassifiedFailure) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	res := failure.Result

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", res.TestName)
	fmt.Fprintf(w, "[cyan]Category: %s[white]\n", failure.Category)

	exitCode := "unknown"
	if res.ExitCode != nil {
		exitCode = fmt.Sprintf("%d", *res.ExitCode)
	}
	fmt.Fprintf(w, "[yellow]Exit Code: %s | Execution Time: %.2fs[white]\n\n", exitCode, res.ExecutionTime)

	if res.Description != "" {
		fmt.Fprintf(w, "[yellow]Description:[white]\n%s\n\n", res.Description)
	}

	if res.ErrorMessage != "" {
		fmt.Fprintf(w, "[yellow]Error Message:[white]\n%s\n\n", res.ErrorMessage)
	}

	if res.Stderr != "" {
		fmt.Fprintf(w, "[yellow]Stderr:[white]\n")
		lines := strings.Split(res.Stderr, "\n")
		for i, line := range lines {
			if i < maxStderrLines {
				fmt.Fprintf(w, "  %s\n", tview.Escape(line))
			}
		}
		if len(lines) > maxStderrLines {
			fmt.Fprintf(w, "  [gray]... and %d more lines[white]\n", len(lines)-maxStderrLines)
		}
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a failure
func (fv *FailureViewer) formatFailureStats(failure domain.ClassifiedFailure, number int) string {
	var builder strings.Builder

	testName := failure.Result.TestName
	if testName == "" {
		testName = fmt.Sprintf("Test %d", number)
	}

	statsLine := fmt.Sprintf("[cyan]group:[white] [yellow]%s[white]  [cyan]test:[white] [yellow]%s[white]", failure.Group, testName)
	builder.WriteString(statsLine)
	builder.WriteString("\n")

	return builder.String()
}
