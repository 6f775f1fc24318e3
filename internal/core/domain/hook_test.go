package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/core/domain"
)

func TestInvocationPatch_Apply(t *testing.T) {
	inv := domain.NewInvocation("cargo", "/src").
		WithArgs("build").
		WithEnv("CLANG_PATH", "/ndk/clang").
		WithEnv("RUSTFLAGS", "-Cdebuginfo=0")

	patched := domain.InvocationPatch{
		Env:      map[string]string{"RUSTFLAGS": "-Cdebuginfo=1", "AAA": "first"},
		UnsetEnv: []string{"CLANG_PATH", "NOT_SET"},
		Args:     []string{"--locked"},
	}.Apply(inv)

	assert.Equal(t, []string{"build", "--locked"}, patched.Args())
	assert.Equal(t, []domain.EnvVar{
		{Key: "RUSTFLAGS", Value: "-Cdebuginfo=1"},
		{Key: "AAA", Value: "first"},
	}, patched.Env())
	assert.Equal(t, []string{"build"}, inv.Args())
}

func TestPatchHook(t *testing.T) {
	assert.Nil(t, domain.PatchHook(domain.InvocationPatch{}, nil))

	hook := domain.PatchHook(
		domain.InvocationPatch{Args: []string{"--locked"}},
		map[string]domain.InvocationPatch{"arm64": {Env: map[string]string{"LEVEL": "arm64"}}},
	)
	require.NotNil(t, hook)

	arm64, err := domain.DefaultCatalog().Lookup("arm64")
	require.NoError(t, err)
	inv, err := hook(domain.NewInvocation("cargo", "/src"), arm64)
	require.NoError(t, err)
	assert.Equal(t, []string{"--locked"}, inv.Args())
	level, ok := inv.Getenv("LEVEL")
	assert.True(t, ok)
	assert.Equal(t, "arm64", level)

	x86, err := domain.DefaultCatalog().Lookup("x86")
	require.NoError(t, err)
	inv, err = hook(domain.NewInvocation("cargo", "/src"), x86)
	require.NoError(t, err)
	_, ok = inv.Getenv("LEVEL")
	assert.False(t, ok)
}

func TestChainHooks(t *testing.T) {
	assert.Nil(t, domain.ChainHooks(nil, nil))

	appendArg := func(arg string) domain.InvocationHook {
		return func(inv domain.Invocation, _ domain.Toolchain) (domain.Invocation, error) {
			return inv.WithArgs(arg), nil
		}
	}

	inv, err := domain.ChainHooks(appendArg("a"), nil, appendArg("b"))(domain.NewInvocation("cargo", "/src"), domain.Toolchain{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, inv.Args())

	boom := errors.New("boom")
	failing := func(domain.Invocation, domain.Toolchain) (domain.Invocation, error) {
		return domain.Invocation{}, boom
	}
	_, err = domain.ChainHooks(failing, appendArg("never"))(domain.NewInvocation("cargo", "/src"), domain.Toolchain{})
	assert.ErrorIs(t, err, boom)
}
