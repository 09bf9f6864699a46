// Package practice is the guided conversation screen: the learner works
// through a lesson's stages one message at a time.
package practice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/akito/kotoba/internal/dialogue"
	"github.com/akito/kotoba/internal/lesson"
)

// Model is the root Bubble Tea model for a practice session.
type Model struct {
	proc *dialogue.Processor
	pkg  *lesson.LessonPackage

	input   textinput.Model
	session *dialogue.SessionState
	busy    bool
	errMsg  string
	width   int
	height  int
}

// New creates the practice screen for a lesson.
func New(proc *dialogue.Processor, pkg *lesson.LessonPackage) Model {
	ti := textinput.New()
	ti.Placeholder = "Respond in Japanese..."
	ti.Focus()

	return Model{proc: proc, pkg: pkg, input: ti}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSession(), m.input.Focus())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionLoadedMsg:
		return m.handleSessionLoaded(msg)

	case turnDoneMsg:
		return m.handleTurnDone(msg)

	case flushDoneMsg:
		return m.handleFlushDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.busy {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.session = msg.Session
	return m, nil
}

func (m Model) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.Err != nil {
		// A turn already in flight means a stale submit; everything else
		// is shown inline so the learner can resend.
		if !errors.Is(msg.Err, dialogue.ErrTurnInFlight) {
			m.errMsg = msg.Err.Error()
		}
		return m, nil
	}
	m.errMsg = ""
	return m, m.loadSession()
}

func (m Model) handleFlushDone(msg flushDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.errMsg = ""
	return m, m.loadSession()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.flushSession()
	case "enter":
		if m.busy || m.session == nil || m.session.Completed {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.busy = true
		return m, m.submitTurn(text)
	}

	if !m.busy {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) loadSession() tea.Cmd {
	proc, pkg := m.proc, m.pkg
	return func() tea.Msg {
		sess, err := proc.Session(context.Background(), pkg)
		return sessionLoadedMsg{Session: sess, Err: err}
	}
}

func (m Model) submitTurn(text string) tea.Cmd {
	proc, pkg := m.proc, m.pkg
	return func() tea.Msg {
		res, err := proc.Turn(context.Background(), pkg, text)
		return turnDoneMsg{Result: res, Err: err}
	}
}

func (m Model) flushSession() tea.Cmd {
	proc, pkg := m.proc, m.pkg
	return func() tea.Msg {
		return flushDoneMsg{Err: proc.Flush(context.Background(), pkg)}
	}
}

// Run launches the practice program for a lesson.
func Run(proc *dialogue.Processor, pkg *lesson.LessonPackage) error {
	p := tea.NewProgram(New(proc, pkg))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
