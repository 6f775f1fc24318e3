package ndk_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/adapters/ndk"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func standaloneConfig(t *testing.T, toolchainDir string, levels map[string]int) *domain.BuildConfig {
	t.Helper()
	targets := make([]string, 0, len(levels))
	for target := range levels {
		targets = append(targets, target)
	}
	cfg, err := domain.NewBuildConfig(domain.BuildSettings{
		ProjectRoot:          t.TempDir(),
		Module:               "rust",
		Libname:              "example",
		Targets:              targets,
		APILevels:            levels,
		PythonCommand:        "python3",
		StandaloneToolchains: true,
		ToolchainDirectory:   toolchainDir,
	})
	require.NoError(t, err)
	return cfg
}

func TestGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	toolchainDir := t.TempDir()
	stale := filepath.Join(toolchainDir, "arm-19", "stale")
	require.NoError(t, os.MkdirAll(stale, domain.DirPerm))

	cfg := standaloneConfig(t, toolchainDir, map[string]int{"arm": 19})
	tc, err := cfg.Catalog().Lookup("arm")
	require.NoError(t, err)
	ndkDesc := domain.Ndk{Path: "/opt/ndk", Version: "19.2.5345600"}

	want := domain.Command{
		Name: "python3",
		Args: []string{
			filepath.Join("/opt/ndk", "build", "tools", "make_standalone_toolchain.py"),
			"--arch=arm",
			"--api=19",
			"--install-dir=" + filepath.Join(toolchainDir, "arm-19"),
			"--force",
		},
	}
	mockLogger.EXPECT().Info("Generating standalone toolchain arm-19")
	mockExec.EXPECT().Execute(gomock.Any(), want, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, err := io.WriteString(stdout, "Installed to arm-19\n")
			return err
		})
	mockLogger.EXPECT().Info("Installed to arm-19")

	require.NoError(t, ndk.NewGenerator(mockExec, mockLogger).Generate(context.Background(), cfg, ndkDesc, tc))
	assert.NoDirExists(t, stale)
}

func TestGenerator_Generate_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	cfg := standaloneConfig(t, t.TempDir(), map[string]int{"x86_64": 21})
	tc, err := cfg.Catalog().Lookup("x86_64")
	require.NoError(t, err)

	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, _, stderr io.Writer) error {
			_, _ = io.WriteString(stderr, "unsupported arch\n")
			return zerr.With(zerr.New("command failed"), "exit_code", 1)
		})

	err = ndk.NewGenerator(mockExec, mockLogger).Generate(context.Background(), cfg, domain.Ndk{Path: "/opt/ndk"}, tc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolchainGenerationFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "unsupported arch", zErr.Metadata()["output"])
}

func TestGenerator_Generate_Rejects64BitBelow21(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	tc, err := domain.StandaloneCatalog().Lookup("arm64")
	require.NoError(t, err)
	cfg, err := domain.NewBuildConfig(domain.BuildSettings{
		ProjectRoot: t.TempDir(),
		Module:      "rust",
		Libname:     "example",
		Targets:     []string{"arm64"},
		APILevel:    intPtr(19),
	})
	require.NoError(t, err)

	err = ndk.NewGenerator(mockExec, mockLogger).Generate(context.Background(), cfg, domain.Ndk{Path: "/opt/ndk"}, tc)
	assert.ErrorIs(t, err, domain.ErrAPILevelTooLow)
}

func TestGenerator_Generate_SkipsPrebuilt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	tc, err := domain.DefaultCatalog().Lookup("arm64")
	require.NoError(t, err)

	require.NoError(t, ndk.NewGenerator(mockExec, mockLogger).Generate(context.Background(), nil, domain.Ndk{}, tc))
}

func intPtr(v int) *int { return &v }
