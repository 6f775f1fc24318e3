// Package fs provides file system adapters for copying and hashing build artifacts.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier implements ports.ArtifactCopier using doublestar include patterns.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy copies the regular files below srcDir that match any pattern into destDir,
// keeping their relative paths. Patterns use forward slashes and support `**`.
// A missing srcDir copies nothing.
func (c *Copier) Copy(srcDir, destDir string, patterns []string) ([]string, error) {
	if _, err := os.Stat(srcDir); errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	}

	matches, err := resolve(os.DirFS(srcDir), patterns)
	if err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrArtifactCopyFailed, err), "dir", srcDir)
	}

	copied := make([]string, 0, len(matches))
	for _, rel := range matches {
		src := filepath.Join(srcDir, filepath.FromSlash(rel))
		dest := filepath.Join(destDir, filepath.FromSlash(rel))
		if err := copyFile(src, dest); err != nil {
			return nil, zerr.With(domain.Wrap(domain.ErrArtifactCopyFailed, err), "path", src)
		}
		copied = append(copied, dest)
	}
	return copied, nil
}

// resolve expands patterns against fsys into a sorted, de-duplicated list of files.
func resolve(fsys iofs.FS, patterns []string) ([]string, error) {
	var all []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(zerr.Wrap(doublestar.ErrBadPattern, "invalid include pattern"), "pattern", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		all = append(all, matches...)
	}
	slices.Sort(all)
	return slices.Compact(all), nil
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return err
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the cargo output directory
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return err
	}

	//nolint:gosec // Path is below the packaging directory
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
