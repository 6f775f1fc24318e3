// Package linear renders build progress as prefixed, chronological lines.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cargojni/internal/ui/output"
	"go.trai.ch/cargojni/internal/ui/style"
)

// Renderer implements ports.Renderer by writing every line of compiler output
// with a "[target]" prefix. It holds no terminal state, so it works equally
// on a TTY and in CI logs.
type Renderer struct {
	w   io.Writer
	out *termenv.Output

	mu    sync.Mutex
	spans map[string]*spanState
}

type spanState struct {
	name    string
	started time.Time
	partial bytes.Buffer
}

// NewRenderer creates a Renderer writing to w. A nil w means stderr.
func NewRenderer(w io.Writer) *Renderer {
	out := output.NewWithProfile(w, output.ColorProfileANSI)
	return &Renderer{
		w:     out,
		out:   out,
		spans: make(map[string]*spanState),
	}
}

// Start does nothing; the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop writes any partial lines still buffered.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.spans {
		r.flushLocked(s)
	}
	return nil
}

// Wait does nothing; the renderer writes synchronously.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit announces the targets about to be built.
func (r *Renderer) OnPlanEmit(targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(targets) == 0 {
		_, _ = fmt.Fprintln(r.w, r.faint("No targets to build"))
		return
	}
	_, _ = fmt.Fprintf(r.w, "Building %d target(s): %s\n", len(targets), strings.Join(targets, ", "))
}

// OnTaskStart registers a target build.
func (r *Renderer) OnTaskStart(spanID, _, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans[spanID] = &spanState{name: name, started: startTime}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.faint(prefix(name)), r.faint("Starting..."))
}

// OnTaskLog prints the complete lines in data and keeps the rest for later.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}

	s.partial.Write(data)
	for {
		i := bytes.IndexByte(s.partial.Bytes(), '\n')
		if i < 0 {
			return
		}
		line := s.partial.Next(i + 1)
		r.printLocked(s.name, line)
	}
}

// OnTaskComplete prints the remaining output and the outcome of the build.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}
	delete(r.spans, spanID)
	r.flushLocked(s)

	elapsed := endTime.Sub(s.started).Round(time.Millisecond)
	if err != nil {
		icon := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix(s.name), icon, elapsed, err)
		return
	}
	icon := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", prefix(s.name), icon, elapsed)
}

// flushLocked requires r.mu.
func (r *Renderer) flushLocked(s *spanState) {
	if s.partial.Len() == 0 {
		return
	}
	r.printLocked(s.name, s.partial.Bytes())
	s.partial.Reset()
}

// printLocked requires r.mu.
func (r *Renderer) printLocked(name string, line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prefix(name), line)
}

func (r *Renderer) faint(s string) string {
	return r.out.String(s).Faint().String()
}

func prefix(name string) string {
	return "[" + name + "]"
}
