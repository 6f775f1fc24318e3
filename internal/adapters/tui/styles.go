package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cargojni/internal/ui/style"
)

var (
	pendingStyle = lipgloss.NewStyle().Foreground(style.Slate)
	runningStyle = lipgloss.NewStyle().Foreground(style.Iris).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(style.Green)
	failedStyle  = lipgloss.NewStyle().Foreground(style.Red)
	elapsedStyle = lipgloss.NewStyle().Foreground(style.Slate).Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	paneStyle = lipgloss.NewStyle().
			PaddingLeft(paneIndent).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(style.Slate)
)
