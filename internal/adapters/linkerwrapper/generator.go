// Package linkerwrapper extracts the scripts cargo runs as its linker when cross-compiling.
package linkerwrapper

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/zerr"
)

// assetPrefix is stripped from embedded paths when extracting.
const assetPrefix = "assets/linker-wrapper"

//go:embed assets/linker-wrapper
var assets embed.FS

// Generator implements ports.LinkerWrapperGenerator.
type Generator struct {
	files fs.FS
}

// NewGenerator creates a Generator serving the embedded wrapper scripts.
func NewGenerator() *Generator {
	sub, err := fs.Sub(assets, assetPrefix)
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}
	return &Generator{files: sub}
}

// NewGeneratorFS creates a Generator serving files from fsys.
func NewGeneratorFS(fsys fs.FS) *Generator {
	return &Generator{files: fsys}
}

// Generate writes every wrapper file into dir, replacing what is there. Files
// are flattened to their base names, so duplicates collapse to the first one
// found. Directories are only created as needed.
func (g *Generator) Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrLinkerWrapperFailed, err), "dir", dir)
	}

	seen := make(map[string]struct{})
	var written []string
	err := fs.WalkDir(g.files, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		name := path.Base(p)
		if _, dup := seen[name]; dup {
			return nil
		}
		seen[name] = struct{}{}

		data, err := fs.ReadFile(g.files, p)
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, name)
		if err := writeExecutable(dest, data); err != nil {
			return err
		}
		written = append(written, dest)
		return nil
	})
	if err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrLinkerWrapperFailed, err), "dir", dir)
	}
	return written, nil
}

func writeExecutable(dest string, data []byte) error {
	//nolint:gosec // wrapper scripts must be executable
	if err := os.WriteFile(dest, data, domain.ExecPerm); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(dest, domain.ExecPerm)
}
