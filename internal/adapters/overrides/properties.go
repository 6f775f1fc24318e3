// Package overrides reads per-checkout overrides from local.properties and the environment.
package overrides

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/zerr"
)

// Source implements ports.OverrideSource.
type Source struct {
	environ func() []string
}

// NewSource creates a Source reading the process environment.
func NewSource() *Source {
	return &Source{environ: os.Environ}
}

// WithEnviron replaces the environment provider. Used by tests.
func (s *Source) WithEnviron(environ func() []string) *Source {
	s.environ = environ
	return s
}

// Load reads <root>/local.properties, if present, together with the environment.
func (s *Source) Load(root string) (domain.Overrides, error) {
	props, err := ReadFile(filepath.Join(root, domain.LocalPropertiesFileName))
	if err != nil {
		return domain.Overrides{}, err
	}
	return domain.NewOverrides(props, environMap(s.environ())), nil
}

// ReadFile parses a Java properties file without expanding ${} references.
// A missing file yields an empty map.
func ReadFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	loader := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrPropertiesReadFailed, err), "path", path)
	}
	return p.Map(), nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
