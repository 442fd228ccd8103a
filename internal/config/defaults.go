package config

const (
	// DefaultOutputDir is the default report output directory
	DefaultOutputDir = "todo"
	// DefaultReportExt is the extension appended to report filenames
	DefaultReportExt = ".md"
	// DefaultWorkers is the default number of report writer workers
	DefaultWorkers = 4
	// IndexFileName is the name of the category index document
	IndexFileName = "README.md"

	// EnvOutputDir overrides the output directory
	EnvOutputDir = "TFA_OUTPUT_DIR"
	// EnvWorkers overrides the writer worker count
	EnvWorkers = "TFA_WORKERS"
)
