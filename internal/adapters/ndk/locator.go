// Package ndk locates the Android NDK and drives its standalone toolchain generator.
package ndk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/magiconair/properties"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

const revisionKey = "Pkg.Revision"

// Locator implements ports.NdkLocator.
type Locator struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLocator creates a Locator reading the process environment.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger, getenv: os.Getenv}
}

// WithGetenv replaces the environment lookup. Used by tests.
func (l *Locator) WithGetenv(getenv func(string) string) *Locator {
	l.getenv = getenv
	return l
}

// Locate returns the NDK at configured. When configured is empty it tries
// ANDROID_NDK_HOME, ANDROID_NDK_ROOT, the newest <sdk>/ndk/<version> and
// finally <sdk>/ndk-bundle.
func (l *Locator) Locate(configured string) (domain.Ndk, error) {
	if configured != "" {
		if !isDir(configured) {
			return domain.Ndk{}, zerr.With(zerr.Wrap(domain.ErrNdkNotFound, ""), "path", configured)
		}
		return l.describe(configured)
	}

	candidates := l.candidates()
	for _, dir := range candidates {
		if isDir(dir) {
			return l.describe(dir)
		}
		l.logger.Debug("No NDK at " + dir)
	}
	return domain.Ndk{}, zerr.With(zerr.Wrap(domain.ErrNdkNotFound, ""), "searched", candidates)
}

func (l *Locator) candidates() []string {
	var dirs []string
	for _, key := range []string{"ANDROID_NDK_HOME", "ANDROID_NDK_ROOT"} {
		if v := l.getenv(key); v != "" {
			dirs = append(dirs, v)
		}
	}

	for _, key := range []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"} {
		sdk := l.getenv(key)
		if sdk == "" {
			continue
		}
		if newest, ok := newestVersionDir(filepath.Join(sdk, "ndk")); ok {
			dirs = append(dirs, newest)
		}
		dirs = append(dirs, filepath.Join(sdk, "ndk-bundle"))
	}
	return dirs
}

func (l *Locator) describe(dir string) (domain.Ndk, error) {
	version, err := ReadRevision(dir)
	if err != nil {
		return domain.Ndk{}, err
	}
	l.logger.Debug("Using NDK " + version + " at " + dir)
	return domain.Ndk{Path: dir, Version: version}, nil
}

// ReadRevision returns Pkg.Revision from <dir>/source.properties, or the
// default version when the file or key is absent.
func ReadRevision(dir string) (string, error) {
	path := filepath.Join(dir, domain.NdkSourcePropertiesFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultNdkVersion, nil
	}

	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadFile(path)
	if err != nil {
		return "", zerr.With(domain.Wrap(domain.ErrPropertiesReadFailed, err), "path", path)
	}
	return strings.TrimSpace(p.GetString(revisionKey, domain.DefaultNdkVersion)), nil
}

// newestVersionDir picks the highest semantic version among the children of dir.
func newestVersionDir(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() && semver.IsValid("v"+e.Name()) {
			versions = append(versions, e.Name())
		}
	}
	if len(versions) == 0 {
		return "", false
	}

	newest := slices.MaxFunc(versions, func(a, b string) int {
		return semver.Compare("v"+a, "v"+b)
	})
	return filepath.Join(dir, newest), true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
