package commands

import (
	"tfa/internal/classify"
	"tfa/internal/config"
	"tfa/internal/report"
	"tfa/internal/storage"
	"tfa/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config     *config.Config
	storage    storage.Storage
	classifier classify.Classifier
	viewer     *ui.FailureViewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(
	cfg *config.Config,
	st storage.Storage,
	classifier classify.Classifier,
	viewer *ui.FailureViewer,
) *ViewCommand {
	return &ViewCommand{
		config:     cfg,
		storage:    st,
		classifier: classifier,
		viewer:     viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := vc.storage.Load(args[0])
	if err != nil {
		return err
	}

	failures := classifyGroups(vc.classifier, results.Groups())

	return vc.viewer.View(report.GroupByCategory(failures))
}
