package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargojni/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "terminal without CI", isTTY: true, ci: "", expected: detector.ModePTY},
		{name: "CI=true forces pipe", isTTY: true, ci: "true", expected: detector.ModePipe},
		{name: "CI=1 forces pipe", isTTY: true, ci: "1", expected: detector.ModePipe},
		{name: "CI=false keeps pty", isTTY: true, ci: "false", expected: detector.ModePTY},
		{name: "no terminal", isTTY: false, ci: "", expected: detector.ModePipe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModePipe, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, detector.ModePTY, detector.ResolveMode("pty", detector.ModePipe))
	assert.Equal(t, detector.ModePipe, detector.ResolveMode("pipe", detector.ModePTY))
	assert.Equal(t, detector.ModePipe, detector.ResolveMode("ci", detector.ModePTY))
	assert.Equal(t, detector.ModePTY, detector.ResolveMode("auto", detector.ModePTY))
	assert.Equal(t, detector.ModePipe, detector.ResolveMode("", detector.ModePipe))
	assert.Equal(t, "pty", detector.ModePTY.String())
	assert.Equal(t, "auto", detector.ModeAuto.String())
}
