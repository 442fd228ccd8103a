package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"tfa/internal/domain"
)

// Formatter formats and displays analysis output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintGroupCounts prints per-group totals and failed counts.
func (f *Formatter) PrintGroupCounts(groups []domain.TestGroup) {
	fmt.Println()
	for _, g := range groups {
		failed := g.FailedCount()
		if failed == 0 {
			color.Green("%s tests: %d total, %d failed", titleCase(g.Name), len(g.Results), failed)
		} else {
			color.Red("%s tests: %d total, %d failed", titleCase(g.Name), len(g.Results), failed)
		}
	}
}

// PrintCategoryBreakdown prints the failure category counts. Groups must
// already be in reporting order.
func (f *Formatter) PrintCategoryBreakdown(groups []domain.CategoryGroup) {
	fmt.Println()
	color.White("Failure categories:")
	for _, g := range groups {
		line := fmt.Sprintf("  %s: %d", g.Category, len(g.Failures))
		if g.Category.Known() {
			color.Yellow("%s", line)
		} else {
			// Upstream label we have no refinement for; worth noticing.
			color.Magenta("%s", line)
		}
	}
}

// PrintSummary displays the results statistics table for the summary command
func (f *Formatter) PrintSummary(results *domain.ResultsFile, failures []domain.ClassifiedFailure) {
	groups := results.Groups()
	total := results.TotalCount()

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Test Failure Statistics                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", total)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", total-len(failures))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", len(failures))

	for _, g := range groups {
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		fmt.Printf("│ %-31s │ ", titleCase(g.Name)+" Failed")
		color.Red("%-27s │\n", fmt.Sprintf("%d / %d", g.FailedCount(), len(g.Results)))
	}

	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
	fmt.Printf("│ %-31s │ ", "Timestamp")
	timestamp := results.Timestamp
	if timestamp == "" {
		timestamp = "unknown"
	}
	color.White("%-27s │\n", timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	if len(failures) == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d of %d test(s) failed", len(failures), total)
	}
}

// titleCase upper-cases the first letter of a group name for display.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
