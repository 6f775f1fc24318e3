// Package invocation turns a resolved toolchain into the cargo command line and
// environment that cross-compiles it.
package invocation

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
)

// Override keys consulted while building an invocation.
const (
	PropAutoConfigureClangSys = "rust.autoConfigureClangSys"
	EnvAutoConfigureClangSys  = "RUST_ANDROID_GRADLE_AUTO_CONFIGURE_CLANG_SYS"
)

// Environment variables read by the linker wrapper.
const (
	EnvWrapperPython  = "RUST_ANDROID_GRADLE_PYTHON_COMMAND"
	EnvWrapperDriver  = "RUST_ANDROID_GRADLE_LINKER_WRAPPER_PY"
	EnvWrapperCC      = "RUST_ANDROID_GRADLE_CC"
	EnvWrapperLinkArg = "RUST_ANDROID_GRADLE_CC_LINK_ARG"
	EnvNdkMajor       = "CARGO_NDK_MAJOR_VERSION"
	EnvClangPath      = "CLANG_PATH"
)

// Request is everything needed to build one target's invocation.
type Request struct {
	Config    *domain.BuildConfig
	Ndk       domain.Ndk
	Toolchain domain.Toolchain
	// HostTriple is rustc's default target; empty means unknown.
	HostTriple string
}

// Builder assembles cargo invocations. It never runs anything.
type Builder struct {
	logger ports.Logger
	host   domain.HostPlatform
}

// NewBuilder creates a Builder for the given host platform.
func NewBuilder(logger ports.Logger, host domain.HostPlatform) *Builder {
	return &Builder{logger: logger, host: host}
}

// Build returns the invocation for req. Arguments come first, then the
// passthrough environment, then the cross-compile environment, then extra
// arguments; the configured hook runs last and may override any of it.
func (b *Builder) Build(req Request) (domain.Invocation, error) {
	cfg, tc := req.Config, req.Toolchain

	dir, err := moduleDir(cfg)
	if err != nil {
		return domain.Invocation{}, err
	}

	inv := domain.NewInvocation(cfg.CargoCommand(), dir)
	if channel := cfg.RustupChannel(); channel != "" {
		if !strings.HasPrefix(channel, "+") {
			channel = "+" + channel
		}
		inv = inv.WithArgs(channel)
	}
	inv = inv.WithArgs("build")

	if b.verbose(cfg) {
		inv = inv.WithArgs("--verbose")
	}
	inv = inv.WithArgs(featureArgs(cfg.Features())...)

	if profile := cfg.Profile(); profile != domain.DefaultProfile {
		inv = inv.WithArgs("--" + profile)
	}
	if req.HostTriple == "" || tc.Target != req.HostTriple {
		inv = inv.WithArgs("--target=" + tc.Target)
	}

	inv = b.passthrough(inv, cfg.Overrides(), tc)

	if !tc.IsDesktop() {
		inv, err = b.crossCompile(inv, req)
		if err != nil {
			return domain.Invocation{}, err
		}
	}

	inv = inv.WithArgs(cfg.ExtraArgs()...)

	if hook := cfg.Hook(); hook != nil {
		return hook(inv, tc)
	}
	return inv, nil
}

func moduleDir(cfg *domain.BuildConfig) (string, error) {
	dir := cfg.Module()
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.ProjectRoot(), dir)
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrModuleNotFound, ""), "module", dir)
		return "", err
	}
	return resolved, nil
}

func (b *Builder) verbose(cfg *domain.BuildConfig) bool {
	if v, ok := cfg.Verbose(); ok {
		return v
	}
	return b.logger.Enabled(slog.LevelInfo)
}

func featureArgs(spec domain.FeatureSpec) []string {
	switch f := spec.(type) {
	case domain.AllFeatures:
		return []string{"--all-features"}
	case domain.DefaultPlusExtra:
		return withFeatures(nil, f.Features)
	case domain.NoDefaultPlusExtra:
		return withFeatures([]string{"--no-default-features"}, f.Features)
	}
	return nil
}

func withFeatures(args, features []string) []string {
	if len(features) == 0 {
		return args
	}
	return append(args, "--features", strings.Join(features, " "))
}

func (b *Builder) passthrough(inv domain.Invocation, overrides domain.Overrides, tc domain.Toolchain) domain.Invocation {
	prefix := domain.TargetPassthroughPrefix + tc.EnvTriple() + "_"
	vars := overrides.WithPrefix(prefix)
	if len(vars) == 0 {
		return inv
	}

	b.logger.Info("Passing through project properties with prefix " + prefix)
	for _, v := range vars {
		b.logger.Debug("Passing through " + prefix + v.Key + " as " + v.String())
		inv = inv.WithEnv(v.Key, v.Value)
	}
	return inv
}

func (b *Builder) crossCompile(inv domain.Invocation, req Request) (domain.Invocation, error) {
	cfg, tc := req.Config, req.Toolchain

	apiLevel, ok := cfg.APILevel(tc.Platform)
	if !ok {
		return inv, zerr.With(zerr.Wrap(domain.ErrMissingAPILevel, ""), "targets", tc.Platform)
	}
	ndkMajor, err := req.Ndk.MajorVersion()
	if err != nil {
		return inv, err
	}

	var toolchainDir string
	switch tc.Kind {
	case domain.AndroidPrebuilt:
		toolchainDir = req.Ndk.PrebuiltToolchainDir(b.host)
		inv = inv.WithEnv(EnvNdkMajor, strconv.Itoa(ndkMajor))
	case domain.AndroidGenerated:
		toolchainDir = cfg.ToolchainDirectory()
	case domain.DesktopNative:
		return inv, nil
	}

	wrapperDir := cfg.LinkerWrapperDir()
	inv = inv.WithEnv("CARGO_TARGET_"+tc.EnvTriple()+"_LINKER", filepath.Join(wrapperDir, b.host.LinkerWrapperScript()))

	cc := filepath.Join(toolchainDir, tc.CC(apiLevel, b.host))
	inv = inv.
		WithEnv("CC_"+tc.Target, cc).
		WithEnv("CXX_"+tc.Target, filepath.Join(toolchainDir, tc.CXX(apiLevel, b.host))).
		WithEnv("AR_"+tc.Target, filepath.Join(toolchainDir, tc.AR(apiLevel, ndkMajor)))

	clang, err := cfg.Overrides().Flag(PropAutoConfigureClangSys, EnvAutoConfigureClangSys, true)
	if err != nil {
		return inv, err
	}
	if clang {
		inv = inv.WithEnv(EnvClangPath, cc)
	}

	inv = inv.
		WithEnv(EnvWrapperPython, cfg.PythonCommand()).
		WithEnv(EnvWrapperDriver, filepath.Join(wrapperDir, domain.LinkerWrapperDriver)).
		WithEnv(EnvWrapperCC, cc).
		WithEnv(EnvWrapperLinkArg, linkArg(cfg))
	return inv, nil
}

func linkArg(cfg *domain.BuildConfig) string {
	soname := "-soname,lib" + cfg.Libname() + ".so"
	if cfg.GenerateBuildID() {
		return "-Wl,--build-id," + soname
	}
	return "-Wl," + soname
}
