package ndk

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator implements ports.ToolchainGenerator with make_standalone_toolchain.py.
type Generator struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(executor ports.Executor, logger ports.Logger) *Generator {
	return &Generator{executor: executor, logger: logger}
}

// Generate recreates <toolchainDirectory>/<arch>-<api> for a generated toolchain.
// The directory is always rebuilt so that partial installs never survive.
func (g *Generator) Generate(ctx context.Context, cfg *domain.BuildConfig, ndk domain.Ndk, tc domain.Toolchain) error {
	if tc.Kind != domain.AndroidGenerated {
		return nil
	}

	apiLevel, ok := cfg.APILevel(tc.Platform)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrMissingAPILevel, ""), "targets", tc.Platform)
	}
	if err := tc.CheckAPILevel(apiLevel); err != nil {
		return err
	}

	installDir := filepath.Join(cfg.ToolchainDirectory(), tc.InstallDirName(apiLevel))
	if err := os.RemoveAll(installDir); err != nil {
		return zerr.With(domain.Wrap(domain.ErrToolchainGenerationFailed, err), "install_dir", installDir)
	}

	cmd := domain.Command{
		Name: cfg.PythonCommand(),
		Args: []string{
			ndk.StandaloneToolchainScript(),
			"--arch=" + tc.Platform,
			"--api=" + strconv.Itoa(apiLevel),
			"--install-dir=" + installDir,
			"--force",
		},
	}

	g.logger.Info("Generating standalone toolchain " + tc.InstallDirName(apiLevel))

	var stdout, stderr bytes.Buffer
	if err := g.executor.Execute(ctx, cmd, &stdout, &stderr); err != nil {
		err = domain.Wrap(domain.ErrToolchainGenerationFailed, err)
		err = zerr.With(err, "target", tc.Platform)
		if out := strings.TrimSpace(stderr.String()); out != "" {
			err = zerr.With(err, "output", out)
		}
		return err
	}

	if out := strings.TrimSpace(stdout.String()); out != "" {
		g.logger.Info(out)
	}
	return nil
}
