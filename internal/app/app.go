// Package app implements the use cases of the cargojni CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.trai.ch/cargojni/internal/adapters/telemetry"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/cargojni/internal/engine/invocation"
	"go.trai.ch/cargojni/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TracerName is the instrumentation name of build spans.
const TracerName = "cargojni"

// Deps are the collaborators an App is built from.
type Deps struct {
	Loader    ports.ConfigLoader
	Locator   ports.NdkLocator
	Wrapper   ports.LinkerWrapperGenerator
	Generator ports.ToolchainGenerator
	Executor  ports.Executor
	Probe     ports.HostTripleProbe
	Builder   *invocation.Builder
	Copier    ports.ArtifactCopier
	Hasher    ports.Hasher
	Store     ports.BuildRecordStore
	Renderer  ports.Renderer
	Logger    ports.Logger
}

// App represents the main application logic.
type App struct {
	deps Deps
	hook domain.InvocationHook
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{deps: deps}
}

// WithHook makes every build run hook on the invocation of each target, after
// the invocation edits declared in the build description.
func (a *App) WithHook(hook domain.InvocationHook) *App {
	a.hook = hook
	return a
}

// Build builds the named targets, or every declared target when none are named.
// Android targets get the NDK located, the linker wrapper extracted and any
// standalone toolchain regenerated before cargo runs.
func (a *App) Build(ctx context.Context, configPath string, targets []string) error {
	cfg, err := a.load(configPath)
	if err != nil {
		return err
	}

	toolchains, err := cfg.Select(targets...)
	if err != nil {
		return err
	}

	ndk, err := a.prepare(ctx, cfg, toolchains)
	if err != nil {
		return err
	}

	return a.run(ctx, cfg, ndk, toolchains)
}

func (a *App) prepare(ctx context.Context, cfg *domain.BuildConfig, toolchains []domain.Toolchain) (domain.Ndk, error) {
	if !slices.ContainsFunc(toolchains, func(tc domain.Toolchain) bool { return !tc.IsDesktop() }) {
		return domain.Ndk{}, nil
	}

	ndk, err := a.locateNdk(cfg)
	if err != nil {
		return domain.Ndk{}, err
	}

	if _, err := a.deps.Wrapper.Generate(cfg.LinkerWrapperDir()); err != nil {
		return domain.Ndk{}, err
	}

	for _, tc := range toolchains {
		if err := a.deps.Generator.Generate(ctx, cfg, ndk, tc); err != nil {
			return domain.Ndk{}, err
		}
	}
	return ndk, nil
}

func (a *App) run(ctx context.Context, cfg *domain.BuildConfig, ndk domain.Ndk, toolchains []domain.Toolchain) error {
	renderer := a.deps.Renderer

	tp := telemetry.NewProvider(renderer)
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()
	tracer := telemetry.NewOTelTracer(TracerName, telemetry.WithProvider(tp), telemetry.WithRenderer(renderer))

	orch := orchestrator.New(
		a.deps.Executor,
		a.deps.Probe,
		a.deps.Builder,
		a.deps.Copier,
		a.deps.Hasher,
		a.deps.Store,
		tracer,
		a.deps.Logger,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()
		return orch.Run(ctx, cfg, ndk, toolchains)
	})

	return g.Wait()
}

// Targets returns the catalog of buildable platforms.
func (a *App) Targets(standalone bool) []domain.Toolchain {
	if standalone {
		return domain.StandaloneCatalog().Toolchains()
	}
	return domain.DefaultCatalog().Toolchains()
}

// GenerateToolchains regenerates the standalone toolchain of every declared
// target that uses one and returns the number generated.
func (a *App) GenerateToolchains(ctx context.Context, configPath string) (int, error) {
	cfg, err := a.load(configPath)
	if err != nil {
		return 0, err
	}

	var generated []domain.Toolchain
	for _, tc := range cfg.Toolchains() {
		if tc.Kind == domain.AndroidGenerated {
			generated = append(generated, tc)
		}
	}
	if len(generated) == 0 {
		a.deps.Logger.Warn("No standalone toolchains configured; set standaloneToolchains: true to use them")
		return 0, nil
	}

	ndk, err := a.locateNdk(cfg)
	if err != nil {
		return 0, err
	}
	for _, tc := range generated {
		if err := a.deps.Generator.Generate(ctx, cfg, ndk, tc); err != nil {
			return 0, err
		}
	}
	return len(generated), nil
}

// GenerateLinkerWrapper extracts the linker wrapper and returns the written files.
func (a *App) GenerateLinkerWrapper(configPath string) ([]string, error) {
	cfg, err := a.load(configPath)
	if err != nil {
		return nil, err
	}
	return a.deps.Wrapper.Generate(cfg.LinkerWrapperDir())
}

// TargetStatus pairs a declared target with its last build record, if any.
type TargetStatus struct {
	Toolchain domain.Toolchain
	Record    *domain.BuildRecord
}

// Status returns the last recorded build of every declared target.
func (a *App) Status(configPath string) ([]TargetStatus, error) {
	cfg, err := a.load(configPath)
	if err != nil {
		return nil, err
	}

	statuses := make([]TargetStatus, 0, len(cfg.Targets()))
	for _, tc := range cfg.Toolchains() {
		record, err := a.deps.Store.Get(cfg.RecordsDir(), tc.Platform)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, TargetStatus{Toolchain: tc, Record: record})
	}
	return statuses, nil
}

// CleanOptions selects what Clean removes. Selecting nothing removes everything.
type CleanOptions struct {
	Records    bool
	Wrappers   bool
	Toolchains bool
}

// Clean removes build records, the extracted linker wrapper and generated toolchains.
func (a *App) Clean(configPath string, opts CleanOptions) error {
	cfg, err := a.load(configPath)
	if err != nil {
		return err
	}

	if !opts.Records && !opts.Wrappers && !opts.Toolchains {
		opts = CleanOptions{Records: true, Wrappers: true, Toolchains: true}
	}

	var errs error
	remove := func(path, name string) {
		a.deps.Logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+name), "path", path))
			return
		}
		a.deps.Logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.Records {
		remove(cfg.RecordsDir(), "build records")
	}
	if opts.Wrappers {
		remove(cfg.LinkerWrapperDir(), "linker wrapper")
	}
	if opts.Toolchains && cfg.StandaloneToolchains() {
		remove(cfg.ToolchainDirectory(), "standalone toolchains")
	}
	return errs
}

func (a *App) load(configPath string) (*domain.BuildConfig, error) {
	cfg, err := a.deps.Loader.Load(configPath)
	if err != nil {
		return nil, err
	}
	if a.hook != nil {
		cfg = cfg.WithHook(domain.ChainHooks(cfg.Hook(), a.hook))
	}
	return cfg, nil
}

func (a *App) locateNdk(cfg *domain.BuildConfig) (domain.Ndk, error) {
	ndk, err := a.deps.Locator.Locate(cfg.NdkPath())
	if err != nil {
		return domain.Ndk{}, err
	}
	a.deps.Logger.Info(fmt.Sprintf("Using NDK %s (revision %s)", ndk.Path, ndk.Version))
	return ndk, nil
}
