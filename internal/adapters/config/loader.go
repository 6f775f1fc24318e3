// Package config provides the build description loader for cargojni.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Override keys understood by the loader.
const (
	PropCargoCommand  = "rust.cargoCommand"
	EnvCargoCommand   = "RUST_ANDROID_GRADLE_CARGO_COMMAND"
	PropRustcCommand  = "rust.rustcCommand"
	EnvRustcCommand   = "RUST_ANDROID_GRADLE_RUSTC_COMMAND"
	PropPythonCommand = "rust.pythonCommand"
	EnvPythonCommand  = "RUST_ANDROID_GRADLE_PYTHON_COMMAND"
	PropRustupChannel = "rust.rustupChannel"
	EnvRustupChannel  = "RUST_ANDROID_GRADLE_RUSTUP_CHANNEL"
	PropTargets       = "rust.targets"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger    ports.Logger
	Overrides ports.OverrideSource
	tempDir   func() string
}

// NewLoader creates a new Loader with the given logger and override source.
func NewLoader(logger ports.Logger, overrides ports.OverrideSource) *Loader {
	return &Loader{Logger: logger, Overrides: overrides, tempDir: os.TempDir}
}

// Load reads the build description at path. A directory is searched upwards for
// cargojni.yaml.
func (l *Loader) Load(path string) (*domain.BuildConfig, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}
	l.Logger.Debug("Loading build description from " + configPath)

	var file BuildFile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := filepath.Dir(configPath)
	overrides, err := l.Overrides.Load(root)
	if err != nil {
		return nil, err
	}

	settings, err := l.toSettings(&file, root, overrides)
	if err != nil {
		return nil, err
	}
	return domain.NewBuildConfig(settings)
}

func findConfiguration(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "path", path)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "path", abs)
	case err != nil:
		return "", zerr.With(domain.Wrap(domain.ErrConfigReadFailed, err), "path", abs)
	case !info.IsDir():
		return abs, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "cwd", abs)
}

func (l *Loader) toSettings(file *BuildFile, root string, o domain.Overrides) (domain.BuildSettings, error) {
	features, err := toFeatureSpec(file.Features)
	if err != nil {
		return domain.BuildSettings{}, err
	}
	hook, err := toHook(file.Invocation, file.StandaloneToolchains)
	if err != nil {
		return domain.BuildSettings{}, err
	}

	s := domain.BuildSettings{
		ProjectRoot:          root,
		ProjectName:          file.Project,
		BuildDir:             resolvePath(root, file.BuildDirectory),
		Module:               file.Module,
		Libname:              file.Libname,
		Targets:              file.Targets,
		APILevel:             file.APILevel,
		APILevels:            file.APILevels,
		MinSdk:               file.MinSdk,
		Profile:              file.Profile,
		Features:             features,
		Verbose:              file.Verbose,
		ExtraArgs:            file.ExtraArgs,
		TargetDirectory:      file.TargetDirectory,
		TargetIncludes:       file.TargetIncludes,
		GenerateBuildID:      file.GenerateBuildID,
		CargoCommand:         override(o, PropCargoCommand, EnvCargoCommand, file.CargoCommand),
		RustcCommand:         override(o, PropRustcCommand, EnvRustcCommand, file.RustcCommand),
		PythonCommand:        override(o, PropPythonCommand, EnvPythonCommand, file.PythonCommand),
		RustupChannel:        override(o, PropRustupChannel, EnvRustupChannel, file.RustupChannel),
		NdkPath:              resolvePath(root, file.NdkPath),
		StandaloneToolchains: file.StandaloneToolchains,
		ToolchainDirectory:   resolvePath(root, file.ToolchainDirectory),
		Overrides:            o,
		Hook:                 hook,
	}

	if s.ProjectName == "" {
		s.ProjectName = filepath.Base(root)
	}
	if s.StandaloneToolchains && s.ToolchainDirectory == "" {
		s.ToolchainDirectory = filepath.Join(l.tempDir(), domain.DefaultStandaloneToolchainDirName)
	}
	if targets, ok := localTargets(o, s.ProjectName); ok {
		l.Logger.Debug("Using targets from " + domain.LocalPropertiesFileName + ": " + strings.Join(targets, ", "))
		s.Targets = targets
	}
	return s, nil
}

func toFeatureSpec(dto *FeaturesDTO) (domain.FeatureSpec, error) {
	if dto == nil {
		return domain.Unspecified{}, nil
	}

	var selected []domain.FeatureSpec
	if dto.All {
		selected = append(selected, domain.AllFeatures{})
	}
	if dto.Default != nil {
		selected = append(selected, domain.DefaultPlusExtra{Features: dto.Default})
	}
	if dto.NoDefault != nil {
		selected = append(selected, domain.NoDefaultPlusExtra{Features: dto.NoDefault})
	}

	switch len(selected) {
	case 0:
		return domain.Unspecified{}, nil
	case 1:
		return selected[0], nil
	default:
		return nil, domain.ErrConflictingFeatures
	}
}

// toHook turns the invocation block into a hook. Per-target keys must name
// platforms of the catalog in use, declared or not.
func toHook(dto *InvocationDTO, standalone bool) (domain.InvocationHook, error) {
	if dto == nil {
		return nil, nil
	}

	catalog := domain.DefaultCatalog()
	if standalone {
		catalog = domain.StandaloneCatalog()
	}

	platforms := make(map[string]domain.InvocationPatch, len(dto.Targets))
	for name, p := range dto.Targets {
		if _, err := catalog.Lookup(name); err != nil {
			return nil, zerr.With(err, "section", "invocation.targets")
		}
		platforms[name] = p.toPatch()
	}
	return domain.PatchHook(dto.Common.toPatch(), platforms), nil
}

func (p PatchDTO) toPatch() domain.InvocationPatch {
	return domain.InvocationPatch{Env: p.Env, UnsetEnv: p.UnsetEnv, Args: p.Args}
}

// localTargets reads rust.targets.<project>, then rust.targets.
func localTargets(o domain.Overrides, project string) ([]string, bool) {
	raw, ok := o.Property(PropTargets + "." + project)
	if !ok {
		raw, ok = o.Property(PropTargets)
	}
	if !ok {
		return nil, false
	}

	parts := strings.Split(raw, ",")
	targets := make([]string, 0, len(parts))
	for _, p := range parts {
		targets = append(targets, strings.TrimSpace(p))
	}
	return targets, true
}

func override(o domain.Overrides, property, env, fallback string) string {
	if v, ok := o.Lookup(property, env); ok && v != "" {
		return v
	}
	return fallback
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is resolved by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Wrap(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return domain.Wrap(domain.ErrConfigParseFailed, parseErr)
	}
	return nil
}
