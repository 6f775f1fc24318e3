package domain

import "strings"

// EnvVar is one environment entry.
type EnvVar struct {
	Key   string
	Value string
}

// String returns the entry in KEY=VALUE form.
func (e EnvVar) String() string {
	return e.Key + "=" + e.Value
}

// Command is a fully resolved external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env is applied on top of the inherited process environment.
	Env []EnvVar
}

// String returns the command line joined by spaces.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
