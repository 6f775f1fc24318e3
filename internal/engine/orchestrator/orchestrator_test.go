package orchestrator_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/adapters/telemetry"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports/mocks"
	"go.trai.ch/cargojni/internal/engine/invocation"
	"go.trai.ch/cargojni/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const hostTriple = "x86_64-unknown-linux-gnu"

type fixture struct {
	root     string
	cfg      *domain.BuildConfig
	ndk      domain.Ndk
	executor *mocks.MockExecutor
	probe    *mocks.MockHostTripleProbe
	copier   *mocks.MockArtifactCopier
	hasher   *mocks.MockHasher
	store    *mocks.MockBuildRecordStore
	logger   *mocks.MockLogger
	orch     *orchestrator.Orchestrator
}

func newFixture(t *testing.T, edit func(*domain.BuildSettings)) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(root, "rust"), domain.DirPerm))

	level := 21
	s := domain.BuildSettings{
		ProjectRoot: root,
		Module:      "rust",
		Libname:     "example",
		Targets:     []string{"arm64", "x86"},
		APILevel:    &level,
		Profile:     "release",
	}
	if edit != nil {
		edit(&s)
	}
	cfg, err := domain.NewBuildConfig(s)
	require.NoError(t, err)

	f := &fixture{
		root:     root,
		cfg:      cfg,
		ndk:      domain.Ndk{Path: filepath.Join(root, "ndk"), Version: "25.1.0"},
		executor: mocks.NewMockExecutor(ctrl),
		probe:    mocks.NewMockHostTripleProbe(ctrl),
		copier:   mocks.NewMockArtifactCopier(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		store:    mocks.NewMockBuildRecordStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Enabled(gomock.Any()).Return(false).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	builder := invocation.NewBuilder(f.logger, domain.HostPlatform{OS: "linux", Arch: "amd64"})
	f.orch = orchestrator.New(
		f.executor, f.probe, builder, f.copier, f.hasher, f.store,
		telemetry.NewDiscardTracer(), f.logger,
	)
	return f
}

func TestRun_BuildsTargetsInOrder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.probe.EXPECT().DefaultTarget(gomock.Any(), "rustc").Return(hostTriple, true).Times(2)
	f.logger.EXPECT().Info("Finished arm64").Times(1)
	f.logger.EXPECT().Info("Finished x86").Times(1)

	gomock.InOrder(
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.Command, stdout, _ io.Writer) error {
				assert.Equal(t, "cargo", cmd.Name)
				assert.Equal(t, []string{"build", "--release", "--target=aarch64-linux-android"}, cmd.Args)
				assert.Equal(t, filepath.Join(f.root, "rust"), cmd.Dir)
				_, _ = io.WriteString(stdout, "Finished arm64\n")
				return nil
			}),
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.Command, stdout, _ io.Writer) error {
				assert.Equal(t, []string{"build", "--release", "--target=i686-linux-android"}, cmd.Args)
				_, _ = io.WriteString(stdout, "Finished x86\n")
				return nil
			}),
	)

	arm64, err := f.cfg.Catalog().Lookup("arm64")
	require.NoError(t, err)
	x86, err := f.cfg.Catalog().Lookup("x86")
	require.NoError(t, err)

	armLib := filepath.Join(f.cfg.JniLibsDir(arm64), "libexample.so")
	x86Lib := filepath.Join(f.cfg.JniLibsDir(x86), "libexample.so")

	patterns := []string{"libexample.so", "libexample.dylib", "example.dll"}
	f.copier.EXPECT().
		Copy(filepath.Join(f.root, "rust", "target", "aarch64-linux-android", "release"), f.cfg.JniLibsDir(arm64), patterns).
		Return([]string{armLib}, nil)
	f.copier.EXPECT().
		Copy(filepath.Join(f.root, "rust", "target", "i686-linux-android", "release"), f.cfg.JniLibsDir(x86), patterns).
		Return([]string{x86Lib}, nil)

	f.hasher.EXPECT().HashFile(armLib).Return("aaaa", nil)
	f.hasher.EXPECT().HashFile(x86Lib).Return("bbbb", nil)
	f.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp").Times(2)

	var records []domain.BuildRecord
	f.store.EXPECT().Put(f.cfg.RecordsDir(), gomock.Any()).
		DoAndReturn(func(_ string, r domain.BuildRecord) error {
			records = append(records, r)
			return nil
		}).Times(2)

	require.NoError(t, f.orch.Run(ctx, f.cfg, f.ndk, f.cfg.Toolchains()))

	require.Len(t, records, 2)
	assert.Equal(t, "arm64", records[0].Target)
	assert.Equal(t, "aarch64-linux-android", records[0].Triple)
	assert.Equal(t, []domain.ArtifactRecord{{Path: armLib, Hash: "aaaa"}}, records[0].Artifacts)
	assert.Equal(t, "fp", records[0].Fingerprint)
	assert.Equal(t, "x86", records[1].Target)
	assert.NotEmpty(t, records[0].RunID)
	assert.Equal(t, records[0].RunID, records[1].RunID)
	assert.WithinDuration(t, time.Now(), records[1].Finished, time.Minute)

	assert.DirExists(t, f.cfg.JniLibsDir(arm64))
}

func TestRun_CargoFailureAborts(t *testing.T) {
	f := newFixture(t, nil)

	f.probe.EXPECT().DefaultTarget(gomock.Any(), "rustc").Return("", false).Times(1)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, _ io.Writer, stderr io.Writer) error {
			_, _ = io.WriteString(stderr, "error[E0425]: cannot find value\n")
			return zerr.With(zerr.Wrap(errors.New("exit status 101"), "command failed"), "exit_code", 101)
		}).Times(1)

	err := f.orch.Run(context.Background(), f.cfg, f.ndk, f.cfg.Toolchains())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCargoFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "arm64", zErr.Metadata()["target"])
	assert.Equal(t, "aarch64-linux-android", zErr.Metadata()["triple"])
}

func TestRun_StdoutLoggedOnFailure(t *testing.T) {
	f := newFixture(t, func(s *domain.BuildSettings) { s.Targets = []string{"arm64"} })

	f.probe.EXPECT().DefaultTarget(gomock.Any(), "rustc").Return(hostTriple, true)
	f.logger.EXPECT().Info("partial output").Times(1)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, "partial output\n")
			return errors.New("exit status 1")
		})

	require.Error(t, f.orch.Run(context.Background(), f.cfg, f.ndk, f.cfg.Toolchains()))
}

func TestRun_NoArtifactsWarns(t *testing.T) {
	f := newFixture(t, func(s *domain.BuildSettings) { s.Targets = []string{"arm64"} })

	f.probe.EXPECT().DefaultTarget(gomock.Any(), "rustc").Return(hostTriple, true)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.copier.EXPECT().Copy(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	f.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp")
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.orch.Run(context.Background(), f.cfg, f.ndk, f.cfg.Toolchains()))
}

func TestRun_CopyFailure(t *testing.T) {
	f := newFixture(t, func(s *domain.BuildSettings) { s.Targets = []string{"arm64"} })

	f.probe.EXPECT().DefaultTarget(gomock.Any(), "rustc").Return(hostTriple, true)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.copier.EXPECT().Copy(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Wrap(domain.ErrArtifactCopyFailed, errors.New("permission denied")))

	err := f.orch.Run(context.Background(), f.cfg, f.ndk, f.cfg.Toolchains())
	assert.ErrorIs(t, err, domain.ErrArtifactCopyFailed)
}

func TestOutputDir(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work", "app")
	shared := filepath.Join(string(filepath.Separator), "cache", "cargo")

	tests := []struct {
		name       string
		edit       func(*domain.BuildSettings)
		platform   string
		hostTriple string
		want       string
	}{
		{
			name:       "module default cross target",
			platform:   "arm64",
			hostTriple: hostTriple,
			want:       filepath.Join(root, "rust", "target", "aarch64-linux-android", "debug"),
		},
		{
			name:       "module default host target",
			platform:   "linux-x86-64",
			hostTriple: hostTriple,
			want:       filepath.Join(root, "rust", "target", "debug"),
		},
		{
			name:       "unknown host keeps the triple",
			platform:   "linux-x86-64",
			hostTriple: "",
			want:       filepath.Join(root, "rust", "target", "x86_64-unknown-linux-gnu", "debug"),
		},
		{
			name: "configured target directory",
			edit: func(s *domain.BuildSettings) {
				s.TargetDirectory = "../shared-target"
				s.Profile = "release"
			},
			platform:   "arm64",
			hostTriple: hostTriple,
			want:       filepath.Join(root, "..", "shared-target", "aarch64-linux-android", "release"),
		},
		{
			name: "override wins",
			edit: func(s *domain.BuildSettings) {
				s.TargetDirectory = "ignored"
				s.Overrides = domain.NewOverrides(nil, map[string]string{orchestrator.EnvCargoTargetDir: shared})
			},
			platform:   "arm64",
			hostTriple: hostTriple,
			want:       filepath.Join(shared, "aarch64-linux-android", "debug"),
		},
		{
			name: "property beats environment",
			edit: func(s *domain.BuildSettings) {
				s.Overrides = domain.NewOverrides(
					map[string]string{orchestrator.PropCargoTargetDir: "prop-target"},
					map[string]string{orchestrator.EnvCargoTargetDir: shared},
				)
			},
			platform:   "arm64",
			hostTriple: hostTriple,
			want:       filepath.Join(root, "prop-target", "aarch64-linux-android", "debug"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := 21
			s := domain.BuildSettings{
				ProjectRoot: root,
				Module:      "rust",
				Libname:     "example",
				Targets:     []string{tt.platform},
				APILevel:    &level,
			}
			if tt.edit != nil {
				tt.edit(&s)
			}
			cfg, err := domain.NewBuildConfig(s)
			require.NoError(t, err)

			assert.Equal(t, filepath.Clean(tt.want), orchestrator.OutputDir(cfg, cfg.Toolchains()[0], tt.hostTriple))
		})
	}
}
