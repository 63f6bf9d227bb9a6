package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/sokinpui/nobom/cli"
	"github.com/sokinpui/nobom/internal/tui"
	"github.com/sokinpui/nobom/internal/ui"
	"github.com/sokinpui/nobom/nobom"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		// The error and usage are already printed.
		os.Exit(2)
	}

	run(cfg)
}

// run processes every target once. Per-file failures are reported as they
// happen and never change the exit code.
func run(cfg *cli.Config, opts ...tea.ProgramOption) {
	if cfg.NoColor {
		ui.DisableColor()
		tui.DisableColor()
	}

	if cfg.TUI && runTUI(cfg, opts...) {
		return
	}

	_, err := nobom.New(&cli.Config{}).Execute()
	reportErr(err)
}

// runTUI shows the results in the summary view. It returns false when the
// view could not start before any file was touched, so the caller can fall
// back to plain output.
func runTUI(cfg *cli.Config, opts ...tea.ProgramOption) bool {
	model := tui.New(nobom.New(cfg))
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	_, err := p.Run()
	if err == nil {
		return true
	}
	ui.Error("Error running program: %v", err)

	if model.Cancel() {
		return false
	}

	// The view went away mid-run: wait for the files and report them plainly.
	summary, err := model.Wait()
	for _, r := range summary.Results {
		ui.Report(r)
	}
	reportErr(err)
	return true
}

func reportErr(err error) {
	if err == nil {
		return
	}
	ui.Error("Error: %v", err)
	var detailed *nobom.DetailedError
	if errors.As(err, &detailed) {
		ui.Header("\n--- Stack Trace ---")
		ui.Error("%s", detailed.Stack)
	}
}
