package config

import "gopkg.in/yaml.v3"

// BuildFile represents the structure of the cargojni.yaml build description.
type BuildFile struct {
	Version string `yaml:"version"`
	Project string `yaml:"project"`

	Module  string   `yaml:"module"`
	Libname string   `yaml:"libname"`
	Targets []string `yaml:"targets"`

	APILevel  *int           `yaml:"apiLevel"`
	APILevels map[string]int `yaml:"apiLevels"`
	MinSdk    *int           `yaml:"minSdk"`

	Profile         string       `yaml:"profile"`
	Features        *FeaturesDTO `yaml:"features"`
	Verbose         *bool        `yaml:"verbose"`
	ExtraArgs       []string     `yaml:"extraArgs"`
	TargetDirectory string       `yaml:"targetDirectory"`
	TargetIncludes  []string     `yaml:"targetIncludes"`
	GenerateBuildID bool         `yaml:"generateBuildId"`
	BuildDirectory  string       `yaml:"buildDirectory"`

	CargoCommand  string `yaml:"cargoCommand"`
	RustcCommand  string `yaml:"rustcCommand"`
	PythonCommand string `yaml:"pythonCommand"`
	RustupChannel string `yaml:"rustupChannel"`

	NdkPath              string `yaml:"ndkPath"`
	StandaloneToolchains bool   `yaml:"standaloneToolchains"`
	ToolchainDirectory   string `yaml:"toolchainDirectory"`

	Invocation *InvocationDTO `yaml:"invocation"`
}

// PatchDTO edits the cargo invocation of a target.
type PatchDTO struct {
	Env      map[string]string `yaml:"env"`
	UnsetEnv []string          `yaml:"unsetEnv"`
	Args     []string          `yaml:"args"`
}

// InvocationDTO holds edits applied to every target, then per-target edits
// keyed by platform id.
type InvocationDTO struct {
	Common  PatchDTO            `yaml:",inline"`
	Targets map[string]PatchDTO `yaml:"targets"`
}

// FeaturesDTO selects cargo features. At most one field may be set.
type FeaturesDTO struct {
	All       bool     `yaml:"all"`
	Default   []string `yaml:"default"`
	NoDefault []string `yaml:"noDefault"`
}

// UnmarshalYAML keeps a declared but empty selection ("noDefault:" with no
// value) distinct from an absent one.
func (f *FeaturesDTO) UnmarshalYAML(value *yaml.Node) error {
	type plain FeaturesDTO
	if err := value.Decode((*plain)(f)); err != nil {
		return err
	}
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		switch value.Content[i].Value {
		case "default":
			f.Default = declared(f.Default)
		case "noDefault":
			f.NoDefault = declared(f.NoDefault)
		}
	}
	return nil
}

func declared(features []string) []string {
	if features == nil {
		return []string{}
	}
	return features
}
