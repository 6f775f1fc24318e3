package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
)

// ErrInterrupted is returned by Wait when the user quit the view during a build.
var ErrInterrupted = zerr.New("build interrupted")

// Renderer drives a Model with a bubbletea program and implements ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a renderer for model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start runs the program in the background.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop asks the program to draw its final frame and exit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program exits.
func (r *Renderer) Wait() error {
	if err := <-r.errCh; err != nil {
		return zerr.Wrap(err, "terminal view failed")
	}
	if r.model.Interrupted() {
		return ErrInterrupted
	}
	return nil
}

// OnPlanEmit implements ports.Renderer.
func (r *Renderer) OnPlanEmit(targets []string) {
	r.program.Send(MsgPlan{Targets: targets})
}

// OnTaskStart implements ports.Renderer.
func (r *Renderer) OnTaskStart(spanID, _, name string, startTime time.Time) {
	r.program.Send(MsgTargetStart{SpanID: spanID, Name: name, At: startTime})
}

// OnTaskLog implements ports.Renderer.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.program.Send(MsgTargetLog{SpanID: spanID, Data: data})
}

// OnTaskComplete implements ports.Renderer.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgTargetComplete{SpanID: spanID, At: endTime, Err: err})
}
