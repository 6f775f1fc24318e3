package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Overrides is the key/value source that can override the build description:
// entries of local.properties plus the process environment.
type Overrides struct {
	properties map[string]string
	environ    map[string]string
}

// NewOverrides creates an override source. Both maps are copied.
func NewOverrides(properties, environ map[string]string) Overrides {
	return Overrides{
		properties: maps.Clone(properties),
		environ:    maps.Clone(environ),
	}
}

// Property returns a local property.
func (o Overrides) Property(name string) (string, bool) {
	v, ok := o.properties[name]
	return v, ok
}

// Lookup returns the property if present, otherwise the environment variable.
func (o Overrides) Lookup(property, env string) (string, bool) {
	if v, ok := o.properties[property]; ok {
		return v, true
	}
	v, ok := o.environ[env]
	return v, ok
}

// Flag parses a boolean override. "1" and "true" enable it, "0" and "false" disable it,
// and an empty or missing value yields ifUnset.
func (o Overrides) Flag(property, env string, ifUnset bool) (bool, error) {
	v, ok := o.Lookup(property, env)
	if !ok {
		return ifUnset, nil
	}

	switch v {
	case "":
		return ifUnset, nil
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}

	err := zerr.Wrap(ErrInvalidFlag, "")
	err = zerr.With(err, "property", property)
	return false, zerr.With(err, "value", v)
}

// WithPrefix returns every entry whose key starts with prefix, with the prefix
// stripped, sorted by key. Properties win over environment entries with the same key.
func (o Overrides) WithPrefix(prefix string) []EnvVar {
	found := make(map[string]string)
	for k, v := range o.environ {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			found[rest] = v
		}
	}
	for k, v := range o.properties {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			found[rest] = v
		}
	}

	vars := make([]EnvVar, 0, len(found))
	for _, k := range slices.Sorted(maps.Keys(found)) {
		vars = append(vars, EnvVar{Key: k, Value: found[k]})
	}
	return vars
}
