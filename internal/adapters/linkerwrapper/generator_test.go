package linkerwrapper_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/adapters/linkerwrapper"
	"go.trai.ch/cargojni/internal/core/domain"
)

func TestGenerator_Generate_Embedded(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build", domain.LinkerWrapperDirName)

	paths, err := linkerwrapper.NewGenerator().Generate(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, domain.LinkerWrapperBatch),
		filepath.Join(dir, domain.LinkerWrapperDriver),
		filepath.Join(dir, domain.LinkerWrapperShell),
	}, paths)

	sh, err := os.ReadFile(filepath.Join(dir, domain.LinkerWrapperShell))
	require.NoError(t, err)
	assert.Contains(t, string(sh), "$RUST_ANDROID_GRADLE_LINKER_WRAPPER_PY")

	py, err := os.ReadFile(filepath.Join(dir, domain.LinkerWrapperDriver))
	require.NoError(t, err)
	assert.Contains(t, string(py), "RUST_ANDROID_GRADLE_CC_LINK_ARG")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, domain.LinkerWrapperShell))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(domain.ExecPerm), info.Mode().Perm())
	}
}

func TestGenerator_Generate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, domain.LinkerWrapperShell)
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o600))

	gen := linkerwrapper.NewGenerator()
	_, err := gen.Generate(dir)
	require.NoError(t, err)
	_, err = gen.Generate(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(stale)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(domain.ExecPerm), info.Mode().Perm())
	}
}

func TestGenerator_Generate_FlattensAndDeduplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"a/wrapper.sh":  {Data: []byte("first")},
		"b/wrapper.sh":  {Data: []byte("second")},
		"b/driver.py":   {Data: []byte("driver")},
		"empty":         {Mode: os.ModeDir},
		"nested/deeper": {Mode: os.ModeDir},
	}
	dir := t.TempDir()

	paths, err := linkerwrapper.NewGeneratorFS(fsys).Generate(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "wrapper.sh"),
		filepath.Join(dir, "driver.py"),
	}, paths)

	data, err := os.ReadFile(filepath.Join(dir, "wrapper.sh"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
	assert.NoDirExists(t, filepath.Join(dir, "empty"))
}
