package fs

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for invocations and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(domain.Wrap(domain.ErrFileOpenFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(domain.Wrap(domain.ErrFileHashFailed, err), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Fingerprint computes a single hash of the command line, working directory
// and environment. Environment order does not matter.
func (h *Hasher) Fingerprint(cmd domain.Command) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(cmd.Name)
	_, _ = hasher.Write([]byte{0})
	for _, arg := range cmd.Args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	_, _ = hasher.WriteString(cmd.Dir)
	_, _ = hasher.Write([]byte{0})

	env := slices.Clone(cmd.Env)
	slices.SortFunc(env, func(a, b domain.EnvVar) int { return strings.Compare(a.Key, b.Key) })
	for _, kv := range env {
		_, _ = hasher.WriteString(kv.Key)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(kv.Value)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
