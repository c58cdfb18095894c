package cmd

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusLabelMsg string

type statusStopMsg struct{}

type statusModel struct {
	spinner spinner.Model
	label   string
	stopped bool
}

func newStatusModel(label string) statusModel {
	return statusModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label: label,
	}
}

func (m statusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLabelMsg:
		m.label = string(msg)
		return m, nil
	case statusStopMsg:
		m.stopped = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m statusModel) View() string {
	if m.stopped {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// statusLine renders a spinner with a changing label on stderr while the
// vault call and the completion handshake are in flight.
type statusLine struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func startStatusLine(ctx context.Context, output io.Writer, label string) *statusLine {
	s := &statusLine{
		program: tea.NewProgram(newStatusModel(label),
			tea.WithInput(nil),
			tea.WithOutput(output),
			tea.WithContext(ctx),
			tea.WithoutSignalHandler(),
		),
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		// A failed render only loses the status line; the run itself goes on.
		_, _ = s.program.Run()
	}()

	return s
}

func (s *statusLine) SetLabel(label string) {
	s.program.Send(statusLabelMsg(label))
}

// Stop clears the status line and waits for the renderer to exit. Safe to
// call more than once.
func (s *statusLine) Stop() {
	s.once.Do(func() {
		s.program.Send(statusStopMsg{})
		<-s.done
	})
}

// clearOnWrite stops the status line right before the first byte reaches
// stdout so spinner frames never interleave with completion text.
type clearOnWrite struct {
	out  *bufio.Writer
	stop func()
}

func (w *clearOnWrite) Write(p []byte) (int, error) {
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
	return w.out.Write(p)
}

func (w *clearOnWrite) Flush() error {
	return w.out.Flush()
}
