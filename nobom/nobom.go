package nobom

import (
	"fmt"
	"runtime/debug"

	"github.com/sokinpui/nobom/cli"
	"github.com/sokinpui/nobom/internal/bom"
	"github.com/sokinpui/nobom/internal/fs"
	"github.com/sokinpui/nobom/internal/ui"
	"github.com/sokinpui/nobom/model"
)

// Targets are the files checked on every run, relative to the working directory.
var Targets = []string{
	"package.json",
	"postcss.config.js",
	"tailwind.config.js",
	"vite.config.js",
	"index.html",
}

// ProgressUpdate is a callback function to report progress.
type ProgressUpdate func(current, total int)

// App orchestrates the entire application logic.
type App struct {
	targets          []string
	echo             bool
	progressCallback ProgressUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance over the fixed target list.
// In TUI mode the per-file lines are left to the summary view.
func New(cfg *cli.Config) *App {
	return newApp(Targets, !cfg.TUI)
}

func newApp(targets []string, echo bool) *App {
	return &App{
		targets: targets,
		echo:    echo,
	}
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// Execute processes every target in order. Per-file failures are part of the
// summary; the returned error is only set for an internal panic.
func (a *App) Execute() (summary model.Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	total := len(a.targets)
	if a.progressCallback != nil {
		a.progressCallback(0, total)
	}

	summary.Results = make([]model.Result, 0, total)
	for i, path := range a.targets {
		summary.Results = append(summary.Results, a.processFile(path))
		if a.progressCallback != nil {
			a.progressCallback(i+1, total)
		}
	}

	if n := len(summary.Removed()); n > 0 {
		summary.Message = fmt.Sprintf("Removed BOM from %d of %d file(s).", n, total)
	} else {
		summary.Message = "No BOM found."
	}
	return summary, nil
}

// processFile reads path, and rewrites it without the BOM if it has one.
// The read handle is closed before the rewrite opens the file again.
func (a *App) processFile(path string) model.Result {
	content, err := fs.ReadFile(path)
	if err != nil {
		return a.report(model.Result{Path: path, Status: model.Failed, Err: err})
	}

	if !bom.Has(content) {
		return a.report(model.Result{Path: path, Status: model.Clean})
	}

	removed := a.report(model.Result{Path: path, Status: model.Removed})
	if err := fs.Rewrite(path, bom.Strip(content)); err != nil {
		return a.report(model.Result{Path: path, Status: model.Failed, Err: err})
	}
	return removed
}

func (a *App) report(r model.Result) model.Result {
	if a.echo {
		ui.Report(r)
	}
	return r
}
