package commands

import (
	"path/filepath"

	"tfa/internal/classify"
	"tfa/internal/config"
	"tfa/internal/domain"
	"tfa/internal/report"
	"tfa/internal/storage"
	"tfa/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// AnalyzeCommand handles the root analyze operation
type AnalyzeCommand struct {
	config     *config.Config
	storage    storage.Storage
	classifier classify.Classifier
	writer     *report.Writer
	formatter  *ui.Formatter
}

// NewAnalyzeCommand creates a new AnalyzeCommand
func NewAnalyzeCommand(
	cfg *config.Config,
	st storage.Storage,
	classifier classify.Classifier,
	writer *report.Writer,
	formatter *ui.Formatter,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		config:     cfg,
		storage:    st,
		classifier: classifier,
		writer:     writer,
		formatter:  formatter,
	}
}

// Execute runs the command
func (ac *AnalyzeCommand) Execute(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	color.White("Analyzing test results from %s...", inputPath)
	results, err := ac.storage.Load(inputPath)
	if err != nil {
		return err
	}

	groups := results.Groups()
	failures := classifyGroups(ac.classifier, groups)

	ac.formatter.PrintGroupCounts(groups)

	categories := report.GroupByCategory(failures)
	ac.formatter.PrintCategoryBreakdown(categories)

	// Generate documentation for each failed test
	color.White("\nGenerating test documentation in %s/...", ac.config.OutputDir)
	ac.writer.SetProgress(ui.NewProgressBar(len(failures)))
	if err := ac.writer.WriteReports(failures); err != nil {
		return err
	}
	color.Green("Generated %d test documentation files", len(failures))

	// Index goes last so every linked report already exists
	indexPath, err := ac.writer.WriteIndex(
		filepath.Base(inputPath),
		results.Timestamp,
		categories,
		len(failures),
		results.TotalCount(),
	)
	if err != nil {
		return err
	}
	color.Green("Created index at %s", indexPath)

	return nil
}

// classifyGroups pairs every failed result with its group name and category.
// Passed results are never classified.
func classifyGroups(c classify.Classifier, groups []domain.TestGroup) []domain.ClassifiedFailure {
	var failures []domain.ClassifiedFailure
	for _, g := range groups {
		for _, res := range g.Results {
			if res.Passed {
				continue
			}
			failures = append(failures, domain.ClassifiedFailure{
				Result:   res,
				Group:    g.Name,
				Category: c.Classify(res),
			})
		}
	}
	return failures
}
