package domain

import "slices"

// Invocation is an immutable cargo command line plus its environment.
// Every With method returns a modified copy; environment keys are unique and
// a later write replaces the earlier value in place.
type Invocation struct {
	executable string
	dir        string
	args       []string
	env        []EnvVar
}

// InvocationHook customizes the invocation built for a toolchain. It runs last,
// so anything it sets takes precedence.
type InvocationHook func(inv Invocation, tc Toolchain) (Invocation, error)

// NewInvocation starts an invocation of executable inside dir.
func NewInvocation(executable, dir string) Invocation {
	return Invocation{executable: executable, dir: dir}
}

// Executable returns the program to run.
func (i Invocation) Executable() string { return i.executable }

// Dir returns the working directory.
func (i Invocation) Dir() string { return i.dir }

// Args returns the arguments following the executable.
func (i Invocation) Args() []string { return slices.Clone(i.args) }

// Env returns the environment entries in insertion order.
func (i Invocation) Env() []EnvVar { return slices.Clone(i.env) }

// Getenv returns the value set for key.
func (i Invocation) Getenv(key string) (string, bool) {
	if idx := i.envIndex(key); idx >= 0 {
		return i.env[idx].Value, true
	}
	return "", false
}

// HasArg reports whether arg appears among the arguments.
func (i Invocation) HasArg(arg string) bool {
	return slices.Contains(i.args, arg)
}

// WithArgs appends arguments.
func (i Invocation) WithArgs(args ...string) Invocation {
	i.args = append(slices.Clip(i.args), args...)
	return i
}

// WithEnv sets an environment variable.
func (i Invocation) WithEnv(key, value string) Invocation {
	env := slices.Clone(i.env)
	if idx := i.envIndex(key); idx >= 0 {
		env[idx].Value = value
	} else {
		env = append(env, EnvVar{Key: key, Value: value})
	}
	i.env = env
	return i
}

// WithoutEnv removes an environment variable.
func (i Invocation) WithoutEnv(key string) Invocation {
	idx := i.envIndex(key)
	if idx < 0 {
		return i
	}
	i.env = slices.Delete(slices.Clone(i.env), idx, idx+1)
	return i
}

// WithDir replaces the working directory.
func (i Invocation) WithDir(dir string) Invocation {
	i.dir = dir
	return i
}

// Command converts the invocation into an executable command.
func (i Invocation) Command() Command {
	return Command{
		Name: i.executable,
		Args: i.Args(),
		Dir:  i.dir,
		Env:  i.Env(),
	}
}

func (i Invocation) envIndex(key string) int {
	return slices.IndexFunc(i.env, func(e EnvVar) bool { return e.Key == key })
}
