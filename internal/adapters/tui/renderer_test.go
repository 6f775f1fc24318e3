package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/adapters/tui"
)

func newTestRenderer(t *testing.T) (*tui.Renderer, *tui.Model) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	model := tui.NewModel(io.Discard)
	renderer := tui.NewRenderer(
		model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
	return renderer, model
}

func TestRenderer_Lifecycle(t *testing.T) {
	renderer, _ := newTestRenderer(t)

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	renderer, model := newTestRenderer(t)
	require.NoError(t, renderer.Start(context.Background()))

	now := time.Now()
	renderer.OnPlanEmit([]string{"arm64", "x86"})
	renderer.OnTaskStart("s1", "", "arm64", now)
	renderer.OnTaskLog("s1", []byte("   Compiling example\r\n"))
	renderer.OnTaskComplete("s1", now.Add(time.Second), nil)

	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())

	status, ok := model.Status("arm64")
	require.True(t, ok)
	assert.Equal(t, tui.StatusDone, status)
	status, _ = model.Status("x86")
	assert.Equal(t, tui.StatusPending, status)
}
