// Package rustc discovers the default target triple of the installed rustc.
package rustc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
)

const triplePrefix = "host: "

// Probe implements ports.HostTripleProbe.
type Probe struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewProbe creates a new Probe.
func NewProbe(executor ports.Executor, logger ports.Logger) *Probe {
	return &Probe{executor: executor, logger: logger}
}

// DefaultTarget runs `rustc --version --verbose` and extracts the host line.
// It is not cached: every build probes again.
func (p *Probe) DefaultTarget(ctx context.Context, rustc string) (string, bool) {
	var stdout bytes.Buffer
	cmd := domain.Command{Name: rustc, Args: []string{"--version", "--verbose"}}

	if err := p.executor.Execute(ctx, cmd, &stdout, io.Discard); err != nil {
		p.logger.Warn(fmt.Sprintf("Failed to get default target triple from rustc (exit code: %d)", exitCode(err)))
		return "", false
	}

	triple, ok := ParseHostTriple(stdout.String())
	if !ok {
		p.logger.Warn("Failed to parse `rustc -Vv` output")
		return "", false
	}
	p.logger.Info("Default rust target triple: " + triple)
	return triple, true
}

// ParseHostTriple finds the `host: ` line of `rustc -Vv` output.
func ParseHostTriple(output string) (string, bool) {
	for line := range strings.SplitSeq(output, "\n") {
		if rest, found := strings.CutPrefix(line, triplePrefix); found {
			triple := strings.TrimSpace(rest)
			return triple, triple != ""
		}
	}
	return "", false
}

func exitCode(err error) int {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if code, ok := zErr.Metadata()["exit_code"].(int); ok {
			return code
		}
	}
	return -1
}
