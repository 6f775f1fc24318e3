// Package shell provides the process executor for cargo, rustc and python.
package shell

import (
	"cmp"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	ptyRows = 24
	ptyCols = 120
)

// Executor implements ports.Executor using os/exec and, optionally, a pseudo terminal.
type Executor struct {
	logger ports.Logger
	usePTY bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithPTY attaches the child's stderr to a pseudo terminal when enabled.
func WithPTY(enabled bool) Option {
	return func(e *Executor) {
		e.usePTY = enabled
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs cmd and waits for it to complete. Stdout goes to stdout, stderr
// to stderr. A failing process yields an error carrying its exit code.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Name == "" {
		return nil
	}

	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // command comes from the build description
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env
	c.Stdout = stdout

	e.logger.Debug("Running " + cmd.String())
	for _, kv := range cmd.Env {
		e.logger.Debug("  env " + kv.String())
	}

	var err error
	if e.usePTY {
		err = runWithPTY(c, stderr)
	} else {
		c.Stderr = stderr
		err = c.Run()
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "command", cmd.Name)
		return zerr.With(err, "exit_code", exitCode)
	}
	return nil
}

// runWithPTY attaches only stderr to the terminal so stdout stays parseable.
func runWithPTY(c *exec.Cmd, stderr io.Writer) error {
	ptmx, tty, err := pty.Open()
	if err != nil {
		c.Stderr = stderr
		return c.Run()
	}
	defer func() { _ = ptmx.Close() }()

	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: ptyRows, Cols: ptyCols})
	c.Stderr = tty

	if err := c.Start(); err != nil {
		_ = tty.Close()
		return err
	}
	// The child holds its own copy; ours must go so reads see EOF once it exits.
	_ = tty.Close()

	var g errgroup.Group
	g.Go(func() error {
		_, copyErr := io.Copy(stderr, ptmx)
		if errors.Is(copyErr, syscall.EIO) {
			return nil
		}
		return copyErr
	})

	waitErr := c.Wait()
	if copyErr := g.Wait(); waitErr == nil && copyErr != nil {
		return zerr.Wrap(copyErr, "failed to read process output")
	}
	return waitErr
}

// resolveEnvironment layers the command's entries over the inherited environment.
// The result is sorted by key.
func resolveEnvironment(sysEnv []string, cmdEnv []domain.EnvVar) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for _, kv := range cmdEnv {
		envMap[kv.Key] = kv.Value
	}

	keys := slices.Sorted(maps.Keys(envMap))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath resolves file against the PATH entry of env, which may differ
// from the PATH of this process once overrides are applied.
func lookPath(file string, env []string) (string, error) {
	i := slices.IndexFunc(env, func(kv string) bool { return strings.HasPrefix(kv, "PATH=") })
	if i < 0 {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(env[i][len("PATH="):]) {
		candidate := filepath.Join(cmp.Or(dir, "."), file)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
