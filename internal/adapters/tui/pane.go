package tui

import (
	"bytes"
	"sync"

	"github.com/vito/midterm"
)

// pane is a scrollable window over a virtual terminal, so carriage-return
// progress lines and colors in cargo output render the way a terminal would.
type pane struct {
	mu     sync.Mutex
	vt     *midterm.Terminal
	height int
	offset int
	follow bool
	buf    bytes.Buffer
}

func newPane(height, width int) *pane {
	p := &pane{
		vt:     midterm.NewAutoResizingTerminal(),
		height: max(height, 1),
		follow: true,
	}
	if width > 0 {
		p.vt.ResizeX(width)
	}
	return p
}

// Write feeds raw output into the terminal. A pane scrolled to the bottom stays there.
func (p *pane) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, err := p.vt.Write(b)
	if p.follow {
		p.offset = p.maxOffsetLocked()
	}
	return n, err
}

func (p *pane) setWidth(w int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vt.ResizeX(max(w, 1))
}

func (p *pane) scroll(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	limit := p.maxOffsetLocked()
	p.offset = min(max(p.offset+delta, 0), limit)
	p.follow = p.offset == limit
}

func (p *pane) view() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buf.Reset()
	used := p.vt.UsedHeight()
	for i := range p.height {
		row := p.offset + i
		if row >= used {
			break
		}
		if i > 0 {
			_ = p.buf.WriteByte('\n')
		}
		_ = p.vt.RenderLine(&p.buf, row)
	}
	return p.buf.String()
}

// maxOffsetLocked requires p.mu.
func (p *pane) maxOffsetLocked() int {
	return max(p.vt.UsedHeight()-p.height, 0)
}
