package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tfa/internal/config"
	"tfa/internal/domain"
	"tfa/internal/ui"
)

// Writer renders and writes report documents to the output directory. Per-test
// files go through a small worker pool; per-file order does not matter, but
// the index must be written only after WriteReports returns.
type Writer struct {
	config   *config.Config
	renderer *Renderer
	progress *ui.ProgressBar
}

// NewWriter creates a new Writer
func NewWriter(cfg *config.Config, renderer *Renderer) *Writer {
	return &Writer{
		config:   cfg,
		renderer: renderer,
	}
}

// SetProgress sets the progress bar for report generation
func (w *Writer) SetProgress(progress *ui.ProgressBar) {
	w.progress = progress
}

// WriteReports writes one report document per classified failure, creating the
// output directory if absent. Any write failure aborts with the first error.
func (w *Writer) WriteReports(failures []domain.ClassifiedFailure) error {
	dir := w.config.OutputDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if len(failures) == 0 {
		return nil
	}

	queue := make(chan domain.ClassifiedFailure, len(failures))
	for _, f := range failures {
		queue <- f
	}
	close(queue)

	errs := make(chan error, len(failures))
	var mu sync.Mutex
	var generated int

	workerCount := w.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range queue {
				doc := w.renderer.RenderFailure(f)
				path := filepath.Join(dir, FileName(f.Result.TestName, w.config.ReportExt))
				if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
					errs <- fmt.Errorf("write report %s: %w", path, err)
					continue
				}
				mu.Lock()
				generated++
				if w.progress != nil {
					w.progress.Update(generated)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	close(errs)

	if w.progress != nil {
		w.progress.Finish()
	}

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteIndex writes the category index document and returns its path. Callers
// must invoke it after WriteReports so every linked file exists.
func (w *Writer) WriteIndex(inputName, timestamp string, groups []domain.CategoryGroup, totalFailed, totalTests int) (string, error) {
	doc := w.renderer.RenderIndex(inputName, timestamp, groups, totalFailed, totalTests, w.config.ReportExt)
	path := w.config.IndexPath()
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write index: %w", err)
	}
	return path, nil
}
