package domain

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultProfile is the cargo profile that needs no command line flag.
const DefaultProfile = "debug"

// BuildSettings is the raw build description as read from the config file.
// It is validated and frozen by NewBuildConfig.
type BuildSettings struct {
	ProjectRoot string
	ProjectName string
	BuildDir    string

	Module  string
	Libname string
	Targets []string

	APILevel  *int
	APILevels map[string]int
	MinSdk    *int

	Profile         string
	Features        FeatureSpec
	Verbose         *bool
	ExtraArgs       []string
	TargetDirectory string
	TargetIncludes  []string
	GenerateBuildID bool

	CargoCommand  string
	RustcCommand  string
	PythonCommand string
	RustupChannel string

	NdkPath              string
	StandaloneToolchains bool
	ToolchainDirectory   string

	Overrides Overrides
	Hook      InvocationHook
}

// BuildConfig is a validated, read-only build description. Every declared target
// resolves to a catalog entry and has an API level.
type BuildConfig struct {
	settings   BuildSettings
	catalog    Catalog
	toolchains []Toolchain
	apiLevels  map[string]int
}

// NewBuildConfig validates settings and fills in defaults.
//
//nolint:cyclop // sequential validation of independent fields
func NewBuildConfig(s BuildSettings) (*BuildConfig, error) {
	switch {
	case s.Module == "":
		return nil, ErrMissingModule
	case s.Libname == "":
		return nil, ErrMissingLibname
	case len(s.Targets) == 0:
		return nil, ErrMissingTargets
	case s.APILevel != nil && len(s.APILevels) > 0:
		return nil, ErrConflictingAPILevels
	}

	s = withDefaults(s)

	apiLevels, err := resolveAPILevels(s)
	if err != nil {
		return nil, err
	}

	catalog := DefaultCatalog()
	if s.StandaloneToolchains {
		if s.ToolchainDirectory == "" {
			return nil, ErrMissingToolchainDirectory
		}
		catalog = StandaloneCatalog()
	}

	toolchains := make([]Toolchain, 0, len(s.Targets))
	for _, target := range s.Targets {
		tc, err := catalog.Lookup(target)
		if err != nil {
			return nil, err
		}
		if tc.Kind == AndroidGenerated {
			if err := tc.CheckAPILevel(apiLevels[target]); err != nil {
				return nil, err
			}
		}
		toolchains = append(toolchains, tc)
	}

	return &BuildConfig{
		settings:   s,
		catalog:    catalog,
		toolchains: toolchains,
		apiLevels:  apiLevels,
	}, nil
}

func withDefaults(s BuildSettings) BuildSettings {
	s.Targets = slices.Clone(s.Targets)
	s.ExtraArgs = slices.Clone(s.ExtraArgs)
	s.TargetIncludes = slices.Clone(s.TargetIncludes)
	s.APILevels = maps.Clone(s.APILevels)

	if s.ProjectName == "" && s.ProjectRoot != "" {
		s.ProjectName = filepath.Base(s.ProjectRoot)
	}
	if s.BuildDir == "" {
		s.BuildDir = filepath.Join(s.ProjectRoot, DefaultBuildDirName)
	}
	if s.Profile == "" {
		s.Profile = DefaultProfile
	}
	if s.Features == nil {
		s.Features = Unspecified{}
	}
	if s.CargoCommand == "" {
		s.CargoCommand = "cargo"
	}
	if s.RustcCommand == "" {
		s.RustcCommand = "rustc"
	}
	if s.PythonCommand == "" {
		s.PythonCommand = "python"
	}
	return s
}

func resolveAPILevels(s BuildSettings) (map[string]int, error) {
	levels := make(map[string]int, len(s.Targets))
	if len(s.APILevels) > 0 {
		maps.Copy(levels, s.APILevels)
	} else {
		var fallback *int
		switch {
		case s.APILevel != nil:
			fallback = s.APILevel
		case s.MinSdk != nil:
			fallback = s.MinSdk
		}
		if fallback != nil {
			for _, target := range s.Targets {
				levels[target] = *fallback
			}
		}
	}

	var missing []string
	for _, target := range s.Targets {
		if _, ok := levels[target]; !ok {
			missing = append(missing, target)
		}
	}
	if len(missing) > 0 {
		return nil, zerr.With(zerr.Wrap(ErrMissingAPILevel, ""), "targets", strings.Join(missing, ", "))
	}
	return levels, nil
}

// WithHook returns a copy of the configuration that runs hook on every invocation.
func (c *BuildConfig) WithHook(hook InvocationHook) *BuildConfig {
	clone := *c
	clone.settings.Hook = hook
	return &clone
}

// ProjectRoot returns the directory holding the build description.
func (c *BuildConfig) ProjectRoot() string { return c.settings.ProjectRoot }

// ProjectName returns the project name used for per-project overrides.
func (c *BuildConfig) ProjectName() string { return c.settings.ProjectName }

// BuildDir returns the output tree for wrappers, copied libraries and records.
func (c *BuildConfig) BuildDir() string { return c.settings.BuildDir }

// Module returns the cargo module path as configured.
func (c *BuildConfig) Module() string { return c.settings.Module }

// Libname returns the library name without platform prefix or suffix.
func (c *BuildConfig) Libname() string { return c.settings.Libname }

// Targets returns the declared platform ids in declaration order.
func (c *BuildConfig) Targets() []string { return slices.Clone(c.settings.Targets) }

// Toolchains returns the resolved toolchains in declaration order.
func (c *BuildConfig) Toolchains() []Toolchain { return slices.Clone(c.toolchains) }

// Catalog returns the catalog targets were resolved against.
func (c *BuildConfig) Catalog() Catalog { return c.catalog }

// APILevel returns the API level of a declared target.
func (c *BuildConfig) APILevel(platform string) (int, bool) {
	level, ok := c.apiLevels[platform]
	return level, ok
}

// Profile returns the cargo profile.
func (c *BuildConfig) Profile() string { return c.settings.Profile }

// Features returns the feature selection.
func (c *BuildConfig) Features() FeatureSpec { return c.settings.Features }

// Verbose returns the configured verbosity and whether it was set at all.
func (c *BuildConfig) Verbose() (verbose, ok bool) {
	if c.settings.Verbose == nil {
		return false, false
	}
	return *c.settings.Verbose, true
}

// ExtraArgs returns raw arguments appended to the cargo command line.
func (c *BuildConfig) ExtraArgs() []string { return slices.Clone(c.settings.ExtraArgs) }

// TargetDirectory returns the configured cargo target directory, if any.
func (c *BuildConfig) TargetDirectory() string { return c.settings.TargetDirectory }

// TargetIncludes returns the artifact include patterns, if any.
func (c *BuildConfig) TargetIncludes() []string { return slices.Clone(c.settings.TargetIncludes) }

// ArtifactPatterns returns the include patterns selecting built libraries:
// targetIncludes when configured, else the names cargo gives the shared library.
func (c *BuildConfig) ArtifactPatterns() []string {
	if len(c.settings.TargetIncludes) > 0 {
		return c.TargetIncludes()
	}
	name := c.settings.Libname
	return []string{"lib" + name + ".so", "lib" + name + ".dylib", name + ".dll"}
}

// GenerateBuildID reports whether the linker is asked for a build id.
func (c *BuildConfig) GenerateBuildID() bool { return c.settings.GenerateBuildID }

// CargoCommand returns the cargo executable.
func (c *BuildConfig) CargoCommand() string { return c.settings.CargoCommand }

// RustcCommand returns the rustc executable.
func (c *BuildConfig) RustcCommand() string { return c.settings.RustcCommand }

// PythonCommand returns the interpreter running the linker wrapper and toolchain generator.
func (c *BuildConfig) PythonCommand() string { return c.settings.PythonCommand }

// RustupChannel returns the toolchain channel override, if any.
func (c *BuildConfig) RustupChannel() string { return c.settings.RustupChannel }

// NdkPath returns the explicitly configured NDK location, if any.
func (c *BuildConfig) NdkPath() string { return c.settings.NdkPath }

// StandaloneToolchains reports whether Android targets use generated toolchains.
func (c *BuildConfig) StandaloneToolchains() bool { return c.settings.StandaloneToolchains }

// ToolchainDirectory returns the root of generated standalone toolchains.
func (c *BuildConfig) ToolchainDirectory() string { return c.settings.ToolchainDirectory }

// Overrides returns the override source.
func (c *BuildConfig) Overrides() Overrides { return c.settings.Overrides }

// Hook returns the invocation hook, or nil.
func (c *BuildConfig) Hook() InvocationHook { return c.settings.Hook }

// NeedsNdk reports whether any declared target cross-compiles for Android.
func (c *BuildConfig) NeedsNdk() bool {
	return slices.ContainsFunc(c.toolchains, func(tc Toolchain) bool { return !tc.IsDesktop() })
}

// Select returns the toolchains for the given platforms, or all of them when none are given.
func (c *BuildConfig) Select(platforms ...string) ([]Toolchain, error) {
	if len(platforms) == 0 {
		return c.Toolchains(), nil
	}

	selected := make([]Toolchain, 0, len(platforms))
	for _, platform := range platforms {
		idx := slices.IndexFunc(c.toolchains, func(tc Toolchain) bool { return tc.Platform == platform })
		if idx < 0 {
			err := zerr.With(zerr.Wrap(ErrTargetNotDeclared, ""), "target", platform)
			return nil, zerr.With(err, "declared", c.Targets())
		}
		selected = append(selected, c.toolchains[idx])
	}
	return selected, nil
}

// LinkerWrapperDir returns where the linker wrapper is extracted.
func (c *BuildConfig) LinkerWrapperDir() string {
	return filepath.Join(c.settings.BuildDir, LinkerWrapperDirName)
}

// JniLibsDir returns the packaging directory for a toolchain's libraries.
func (c *BuildConfig) JniLibsDir(tc Toolchain) string {
	return filepath.Join(c.settings.BuildDir, JniLibsDirName, filepath.FromSlash(tc.Folder))
}

// RecordsDir returns where build records are stored.
func (c *BuildConfig) RecordsDir() string {
	return filepath.Join(c.settings.BuildDir, StateDirName, RecordsDirName)
}
