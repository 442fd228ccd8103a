package commands

import (
	"tfa/internal/classify"
	"tfa/internal/cli"
	"tfa/internal/config"
	"tfa/internal/report"
	"tfa/internal/storage"
	"tfa/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Analyze *AnalyzeCommand
	Summary *SummaryCommand
	View    *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage()
	classifier := classify.NewRuleClassifier()
	renderer := report.NewRenderer()
	writer := report.NewWriter(cfg, renderer)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Analyze: NewAnalyzeCommand(cfg, jsonStorage, classifier, writer, formatter),
		Summary: NewSummaryCommand(cfg, jsonStorage, classifier, formatter),
		View:    NewViewCommand(cfg, jsonStorage, classifier, viewer),
	}
}

// Register registers all commands with cobra. The analyze operation runs on
// the root command itself so the results file is the sole required argument.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = c.Analyze.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}
	rootCmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", `Directory for generated reports (default "todo")`)
	rootCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of report writer workers (default 4)")

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary <results.json>",
		Short: "Print failure statistics without writing reports",
		Long:  "Classify test failures and print per-group totals and the category breakdown, without generating any files",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Summary.Execute,
	}
	rootCmd.AddCommand(summaryCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <results.json>",
		Short: "Browse classified failures interactively",
		Long:  "Classify test failures and browse them in an interactive viewer, grouped by category",
		Args:  cobra.ExactArgs(1),
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
