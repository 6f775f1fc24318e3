package tui

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/cargojni/internal/ui/style"
)

// View renders the target list. Running and failed targets show their output below the row.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return "Preparing build..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Building %d target(s)", len(m.rows))))
	b.WriteString("\n")

	width := 0
	for _, r := range m.rows {
		width = max(width, len(r.name))
	}

	for _, r := range m.rows {
		b.WriteString(m.renderRow(r, width))
		b.WriteString("\n")
		if r.status == StatusRunning || r.status == StatusFailed {
			if content := r.pane.view(); content != "" {
				b.WriteString(paneStyle.Render(content))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (m *Model) renderRow(r *row, width int) string {
	name := fmt.Sprintf("%-*s", width, r.name)

	switch r.status {
	case StatusRunning:
		return "  " + runningStyle.Render(style.Dot+" "+name) + " " + elapsedStyle.Render(elapsed(r.started, m.now()))
	case StatusDone:
		return "  " + doneStyle.Render(style.Check+" "+name) + " " + elapsedStyle.Render(elapsed(r.started, r.finished))
	case StatusFailed:
		return "  " + failedStyle.Render(style.Cross+" "+name) + " " + elapsedStyle.Render(elapsed(r.started, r.finished))
	default:
		return "  " + pendingStyle.Render(style.Circle+" "+name)
	}
}

func elapsed(from, to time.Time) string {
	return to.Sub(from).Round(100 * time.Millisecond).String()
}
