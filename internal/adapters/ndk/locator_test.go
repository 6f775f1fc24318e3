package ndk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/adapters/ndk"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLocator(t *testing.T, env map[string]string) *ndk.Locator {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return ndk.NewLocator(mockLogger).WithGetenv(func(key string) string { return env[key] })
}

func makeNdk(t *testing.T, dir, revision string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	if revision != "" {
		content := "Pkg.Desc = Android NDK\nPkg.Revision = " + revision + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "source.properties"), []byte(content), domain.FilePerm))
	}
	return dir
}

func TestLocator_Locate_Configured(t *testing.T) {
	dir := makeNdk(t, filepath.Join(t.TempDir(), "ndk"), "25.1.8937393")

	got, err := newLocator(t, nil).Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Ndk{Path: dir, Version: "25.1.8937393"}, got)

	major, err := got.MajorVersion()
	require.NoError(t, err)
	assert.Equal(t, 25, major)
}

func TestLocator_Locate_ConfiguredMissing(t *testing.T) {
	_, err := newLocator(t, map[string]string{"ANDROID_NDK_HOME": t.TempDir()}).
		Locate(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNdkNotFound)
}

func TestLocator_Locate_EnvironmentOrder(t *testing.T) {
	home := makeNdk(t, filepath.Join(t.TempDir(), "home"), "23.0.7599858")
	root := makeNdk(t, filepath.Join(t.TempDir(), "root"), "21.4.7075529")

	got, err := newLocator(t, map[string]string{
		"ANDROID_NDK_HOME": home,
		"ANDROID_NDK_ROOT": root,
	}).Locate("")
	require.NoError(t, err)
	assert.Equal(t, home, got.Path)

	got, err = newLocator(t, map[string]string{
		"ANDROID_NDK_HOME": filepath.Join(t.TempDir(), "gone"),
		"ANDROID_NDK_ROOT": root,
	}).Locate("")
	require.NoError(t, err)
	assert.Equal(t, root, got.Path)
}

func TestLocator_Locate_NewestSideBySide(t *testing.T) {
	sdk := t.TempDir()
	makeNdk(t, filepath.Join(sdk, "ndk", "21.4.7075529"), "21.4.7075529")
	newest := makeNdk(t, filepath.Join(sdk, "ndk", "25.1.8937393"), "25.1.8937393")
	makeNdk(t, filepath.Join(sdk, "ndk", "9.0.0"), "9.0.0")
	makeNdk(t, filepath.Join(sdk, "ndk", "not-a-version"), "")
	makeNdk(t, filepath.Join(sdk, "ndk-bundle"), "19.2.5345600")

	got, err := newLocator(t, map[string]string{"ANDROID_SDK_ROOT": sdk}).Locate("")
	require.NoError(t, err)
	assert.Equal(t, newest, got.Path)
	assert.Equal(t, "25.1.8937393", got.Version)
}

func TestLocator_Locate_NdkBundle(t *testing.T) {
	sdk := t.TempDir()
	bundle := makeNdk(t, filepath.Join(sdk, "ndk-bundle"), "")

	got, err := newLocator(t, map[string]string{"ANDROID_HOME": sdk}).Locate("")
	require.NoError(t, err)
	assert.Equal(t, bundle, got.Path)
	assert.Equal(t, domain.DefaultNdkVersion, got.Version)
}

func TestLocator_Locate_NotFound(t *testing.T) {
	_, err := newLocator(t, map[string]string{"ANDROID_HOME": t.TempDir()}).Locate("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNdkNotFound)
}

func TestReadRevision_MissingKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "source.properties"), []byte("Pkg.Desc = Android NDK\n"), domain.FilePerm))

	version, err := ndk.ReadRevision(dir)
	require.NoError(t, err)
	assert.Equal(t, "0.0", version)
}
