// Package orchestrator builds the declared targets one after another and
// packages their libraries.
package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/cargojni/internal/engine/invocation"
	"go.trai.ch/zerr"
)

// Override keys for the shared cargo output directory.
const (
	PropCargoTargetDir = "rust.cargoTargetDir"
	EnvCargoTargetDir  = "CARGO_TARGET_DIR"
)

// Orchestrator runs cargo for each target and copies the results into the
// packaging tree. Targets are built strictly in order; the first failure aborts
// the run.
type Orchestrator struct {
	executor ports.Executor
	probe    ports.HostTripleProbe
	builder  *invocation.Builder
	copier   ports.ArtifactCopier
	hasher   ports.Hasher
	store    ports.BuildRecordStore
	tracer   ports.Tracer
	logger   ports.Logger

	now   func() time.Time
	runID func() string
}

// New creates a new Orchestrator.
func New(
	executor ports.Executor,
	probe ports.HostTripleProbe,
	builder *invocation.Builder,
	copier ports.ArtifactCopier,
	hasher ports.Hasher,
	store ports.BuildRecordStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		executor: executor,
		probe:    probe,
		builder:  builder,
		copier:   copier,
		hasher:   hasher,
		store:    store,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
		runID:    uuid.NewString,
	}
}

// Run builds toolchains in order with ndk, which may be empty when every
// toolchain is a desktop one.
func (o *Orchestrator) Run(ctx context.Context, cfg *domain.BuildConfig, ndk domain.Ndk, toolchains []domain.Toolchain) error {
	platforms := make([]string, 0, len(toolchains))
	for _, tc := range toolchains {
		platforms = append(platforms, tc.Platform)
	}
	o.tracer.EmitPlan(ctx, platforms)

	runID := o.runID()
	for _, tc := range toolchains {
		if err := o.buildTarget(ctx, cfg, ndk, tc, runID); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) buildTarget(
	ctx context.Context,
	cfg *domain.BuildConfig,
	ndk domain.Ndk,
	tc domain.Toolchain,
	runID string,
) (err error) {
	ctx, span := o.tracer.Start(ctx, tc.Platform, ports.WithAttribute("triple", tc.Target))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if _, ok := cfg.APILevel(tc.Platform); !ok {
		return zerr.With(zerr.Wrap(domain.ErrMissingAPILevel, ""), "targets", tc.Platform)
	}

	hostTriple, _ := o.probe.DefaultTarget(ctx, cfg.RustcCommand())

	inv, err := o.builder.Build(invocation.Request{
		Config:     cfg,
		Ndk:        ndk,
		Toolchain:  tc,
		HostTriple: hostTriple,
	})
	if err != nil {
		return err
	}

	cmd := inv.Command()
	var stdout bytes.Buffer
	execErr := o.executor.Execute(ctx, cmd, &stdout, span)
	if out := strings.TrimRight(stdout.String(), "\n"); out != "" {
		o.logger.Info(out)
	}
	if execErr != nil {
		err = domain.Wrap(domain.ErrCargoFailed, execErr)
		err = zerr.With(err, "target", tc.Platform)
		return zerr.With(err, "triple", tc.Target)
	}

	artifacts, err := o.packageArtifacts(cfg, tc, hostTriple)
	if err != nil {
		return err
	}

	return o.record(cfg, tc, cmd, runID, artifacts)
}

func (o *Orchestrator) packageArtifacts(cfg *domain.BuildConfig, tc domain.Toolchain, hostTriple string) ([]string, error) {
	srcDir := OutputDir(cfg, tc, hostTriple)
	if resolved, err := filepath.EvalSymlinks(srcDir); err == nil {
		srcDir = resolved
	}

	destDir := cfg.JniLibsDir(tc)
	if err := os.MkdirAll(destDir, domain.DirPerm); err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrArtifactCopyFailed, err), "dir", destDir)
	}

	patterns := cfg.ArtifactPatterns()

	copied, err := o.copier.Copy(srcDir, destDir, patterns)
	if err != nil {
		return nil, zerr.With(err, "target", tc.Platform)
	}
	if len(copied) == 0 {
		o.logger.Warn("No libraries matching " + strings.Join(patterns, ", ") + " found in " + srcDir)
	}
	o.logger.Debug(fmt.Sprintf("Copied %d file(s) into %s", len(copied), destDir))
	return copied, nil
}

func (o *Orchestrator) record(cfg *domain.BuildConfig, tc domain.Toolchain, cmd domain.Command, runID string, copied []string) error {
	artifacts := make([]domain.ArtifactRecord, 0, len(copied))
	for _, path := range copied {
		hash, err := o.hasher.HashFile(path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, domain.ArtifactRecord{Path: path, Hash: hash})
	}

	return o.store.Put(cfg.RecordsDir(), domain.BuildRecord{
		Target:      tc.Platform,
		Triple:      tc.Target,
		RunID:       runID,
		Fingerprint: o.hasher.Fingerprint(cmd),
		Artifacts:   artifacts,
		Finished:    o.now(),
	})
}

// OutputDir returns the directory cargo writes tc's libraries to: the shared
// CARGO_TARGET_DIR override, else the configured target directory, else
// <module>/target, followed by [<triple>/]<profile>. The triple is omitted when
// it is rustc's default. Relative results are resolved against the project root.
func OutputDir(cfg *domain.BuildConfig, tc domain.Toolchain, hostTriple string) string {
	base, ok := cfg.Overrides().Lookup(PropCargoTargetDir, EnvCargoTargetDir)
	if !ok || base == "" {
		base = cfg.TargetDirectory()
	}
	if base == "" {
		base = filepath.Join(cfg.Module(), "target")
	}

	dir := filepath.Join(base, tc.Target, cfg.Profile())
	if tc.Target == hostTriple {
		dir = filepath.Join(base, cfg.Profile())
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.ProjectRoot(), dir)
	}
	return filepath.Clean(dir)
}
