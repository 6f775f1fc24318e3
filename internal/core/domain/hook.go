package domain

import (
	"maps"
	"slices"
)

// InvocationPatch is a declarative edit of an invocation.
type InvocationPatch struct {
	// Env entries are set in key order.
	Env map[string]string
	// UnsetEnv entries are removed after Env is applied. Only entries set by the
	// invocation itself can be removed; the inherited environment is untouched.
	UnsetEnv []string
	// Args are appended.
	Args []string
}

// IsZero reports whether the patch changes nothing.
func (p InvocationPatch) IsZero() bool {
	return len(p.Env) == 0 && len(p.UnsetEnv) == 0 && len(p.Args) == 0
}

// Apply returns inv with the patch applied.
func (p InvocationPatch) Apply(inv Invocation) Invocation {
	for _, key := range slices.Sorted(maps.Keys(p.Env)) {
		inv = inv.WithEnv(key, p.Env[key])
	}
	for _, key := range p.UnsetEnv {
		inv = inv.WithoutEnv(key)
	}
	return inv.WithArgs(p.Args...)
}

// PatchHook applies common to every invocation, then the patch keyed by the
// toolchain's platform. It returns nil when there is nothing to apply.
func PatchHook(common InvocationPatch, platforms map[string]InvocationPatch) InvocationHook {
	if common.IsZero() && len(platforms) == 0 {
		return nil
	}
	platforms = maps.Clone(platforms)
	return func(inv Invocation, tc Toolchain) (Invocation, error) {
		inv = common.Apply(inv)
		if p, ok := platforms[tc.Platform]; ok {
			inv = p.Apply(inv)
		}
		return inv, nil
	}
}

// ChainHooks runs the non-nil hooks in order, each seeing the result of the
// previous one.
func ChainHooks(hooks ...InvocationHook) InvocationHook {
	hooks = slices.DeleteFunc(slices.Clone(hooks), func(h InvocationHook) bool { return h == nil })
	switch len(hooks) {
	case 0:
		return nil
	case 1:
		return hooks[0]
	}
	return func(inv Invocation, tc Toolchain) (Invocation, error) {
		for _, hook := range hooks {
			var err error
			if inv, err = hook(inv, tc); err != nil {
				return Invocation{}, err
			}
		}
		return inv, nil
	}
}
