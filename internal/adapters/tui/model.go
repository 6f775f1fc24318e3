// Package tui renders build progress as an interactive terminal view.
package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cargojni/internal/ui/output"
)

const (
	// DefaultPaneHeight is the number of output lines shown per target.
	DefaultPaneHeight = 10
	// tickInterval refreshes elapsed times of running targets.
	tickInterval = 100 * time.Millisecond
	paneIndent   = 2
	// paneMargin is the row indent plus the pane border and padding.
	paneMargin = 4 + 1 + paneIndent
)

// Status is the build state of one target.
type Status int

const (
	// StatusPending targets have not started.
	StatusPending Status = iota
	// StatusRunning targets are being built by cargo.
	StatusRunning
	// StatusDone targets built and were packaged.
	StatusDone
	// StatusFailed targets failed.
	StatusFailed
)

// MsgPlan announces the targets of a build in order.
type MsgPlan struct {
	Targets []string
}

// MsgTargetStart marks a target as running.
type MsgTargetStart struct {
	SpanID string
	Name   string
	At     time.Time
}

// MsgTargetLog carries raw output of a running target.
type MsgTargetLog struct {
	SpanID string
	Data   []byte
}

// MsgTargetComplete marks a target as finished; Err is nil on success.
type MsgTargetComplete struct {
	SpanID string
	At     time.Time
	Err    error
}

type tickMsg time.Time

type row struct {
	name     string
	status   Status
	started  time.Time
	finished time.Time
	pane     *pane
}

// Model is the bubbletea model of a build.
type Model struct {
	rows        []*row
	byName      map[string]*row
	bySpan      map[string]*row
	width       int
	paneHeight  int
	interrupted bool
	now         func() time.Time
}

// NewModel creates a model whose colors follow the terminal behind w.
func NewModel(w io.Writer) *Model {
	lipgloss.SetColorProfile(output.New(w).Profile)
	return &Model{
		byName:     make(map[string]*row),
		bySpan:     make(map[string]*row),
		paneHeight: DefaultPaneHeight,
		now:        time.Now,
	}
}

// WithPaneHeight sets how many output lines are shown per target.
func (m *Model) WithPaneHeight(h int) *Model {
	m.paneHeight = max(h, 1)
	return m
}

// Interrupted reports whether the user asked to stop the build.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

// Status returns the state of a target and whether it is part of the plan.
func (m *Model) Status(name string) (Status, bool) {
	r, ok := m.byName[name]
	if !ok {
		return StatusPending, false
	}
	return r.status, true
}

// Init starts the refresh ticker.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update applies a message to the model.
//
//nolint:cyclop // one branch per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		for _, r := range m.rows {
			r.pane.setWidth(m.width - paneMargin)
		}

	case tickMsg:
		return m, tick()

	case MsgPlan:
		m.rows = make([]*row, 0, len(msg.Targets))
		for _, name := range msg.Targets {
			r := &row{name: name, pane: newPane(m.paneHeight, m.width-paneMargin)}
			m.rows = append(m.rows, r)
			m.byName[name] = r
		}

	case MsgTargetStart:
		if r, ok := m.byName[msg.Name]; ok {
			r.status = StatusRunning
			r.started = msg.At
			m.bySpan[msg.SpanID] = r
		}

	case MsgTargetLog:
		if r, ok := m.bySpan[msg.SpanID]; ok {
			_, _ = r.pane.Write(msg.Data)
		}

	case MsgTargetComplete:
		if r, ok := m.bySpan[msg.SpanID]; ok {
			r.finished = msg.At
			r.status = StatusDone
			if msg.Err != nil {
				r.status = StatusFailed
			}
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.interrupted = true
		return tea.Quit
	case "k", "up":
		m.scrollActive(-1)
	case "j", "down":
		m.scrollActive(1)
	case "pgup":
		m.scrollActive(-m.paneHeight)
	case "pgdown":
		m.scrollActive(m.paneHeight)
	}
	return nil
}

func (m *Model) scrollActive(delta int) {
	if r := m.active(); r != nil {
		r.pane.scroll(delta)
	}
}

// active is the most recently started target that is still running.
func (m *Model) active() *row {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].status == StatusRunning {
			return m.rows[i]
		}
	}
	return nil
}
