package tui

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sokinpui/nobom/model"
	"github.com/sokinpui/nobom/nobom"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// DisableColor renders every style without ANSI sequences.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// --- Messages ---
type summaryMsg struct {
	model.Summary
}

type progressMsg struct {
	current, total int
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app      *nobom.App
	spinner  spinner.Model
	state    state
	progress progressMsg
	summary  summaryMsg
	err      error

	started atomic.Bool
	done    chan struct{}
	result  model.Summary
	runErr  error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(app *nobom.App) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &Model{
		app:     app,
		spinner: s,
		state:   stateProcessing,
		done:    make(chan struct{}),
	}
}

// SetProgram lets the model forward progress updates to the running program.
func (m *Model) SetProgram(p *tea.Program) {
	m.app.SetProgressCallback(func(current, total int) {
		p.Send(progressMsg{current: current, total: total})
	})
}

// Err is the error the run ended with, if any.
func (m *Model) Err() error {
	return m.err
}

// Cancel keeps the files from being processed if that has not begun yet.
// It reports false when the run is already under way; use Wait then.
func (m *Model) Cancel() bool {
	return m.started.CompareAndSwap(false, true)
}

// Wait blocks until a started run has finished and returns its outcome.
// It must only be called after Cancel reported false.
func (m *Model) Wait() (model.Summary, error) {
	<-m.done
	return m.result, m.runErr
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// A rewrite in flight must not be cut off.
			if m.state == stateProcessing {
				return m, nil
			}
			return m, tea.Quit
		}

	case progressMsg:
		m.progress = msg
		return m, nil

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case stateProcessing:
		if m.progress.total > 0 {
			return fmt.Sprintf("%s Checking files [%d/%d]...", m.spinner.View(), m.progress.current, m.progress.total)
		}
		return fmt.Sprintf("%s Checking files...", m.spinner.View())
	case stateError:
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	if m.summary.Message != "" {
		b.WriteString(headerStyle.Render(m.summary.Message))
		b.WriteString("\n\n")
	}

	for _, r := range m.summary.Results {
		switch r.Status {
		case model.Removed:
			b.WriteString(successStyle.Render(r.Message()))
		case model.Failed:
			b.WriteString(errorStyle.Render(r.Message()))
		default:
			b.WriteString(faintStyle.Render(r.Message()))
		}
		b.WriteString("\n")
	}

	if len(m.summary.Results) == 0 && m.summary.Message == "" {
		b.WriteString(faintStyle.Render("Nothing to do."))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) runApp() tea.Msg {
	if !m.started.CompareAndSwap(false, true) {
		return nil
	}
	summary, err := m.app.Execute()
	m.result, m.runErr = summary, err
	close(m.done)
	if err != nil {
		if e, ok := err.(*nobom.DetailedError); ok {
			// The TUI will exit, so we can print to stderr here for the stack trace.
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		return errorMsg{err}
	}
	return summaryMsg{
		Summary: summary,
	}
}
