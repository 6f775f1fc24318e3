package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargojni/internal/adapters/detector"
	"go.trai.ch/cargojni/internal/adapters/linear"
	"go.trai.ch/cargojni/internal/adapters/tui"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		detected detector.OutputMode
		wantTUI  bool
	}{
		{name: "terminal", detected: detector.ModePTY, wantTUI: true},
		{name: "pipe", detected: detector.ModePipe},
		{name: "forced pipe", flag: "pipe", detected: detector.ModePTY},
		{name: "forced pty", flag: "pty", detected: detector.ModePipe, wantTUI: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRenderer(tt.flag, tt.detected)
			if tt.wantTUI {
				assert.IsType(t, &tui.Renderer{}, r)
			} else {
				assert.IsType(t, &linear.Renderer{}, r)
			}
		})
	}
}
