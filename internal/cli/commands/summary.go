package commands

import (
	"tfa/internal/classify"
	"tfa/internal/config"
	"tfa/internal/report"
	"tfa/internal/storage"
	"tfa/internal/ui"

	"github.com/spf13/cobra"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	config     *config.Config
	storage    storage.Storage
	classifier classify.Classifier
	formatter  *ui.Formatter
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(
	cfg *config.Config,
	st storage.Storage,
	classifier classify.Classifier,
	formatter *ui.Formatter,
) *SummaryCommand {
	return &SummaryCommand{
		config:     cfg,
		storage:    st,
		classifier: classifier,
		formatter:  formatter,
	}
}

// Execute runs the command
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := sc.storage.Load(args[0])
	if err != nil {
		return err
	}

	failures := classifyGroups(sc.classifier, results.Groups())

	sc.formatter.PrintSummary(results, failures)
	if len(failures) > 0 {
		sc.formatter.PrintCategoryBreakdown(report.GroupByCategory(failures))
	}

	return nil
}
