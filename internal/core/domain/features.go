package domain

// FeatureSpec selects which cargo features a build enables.
// It is one of AllFeatures, DefaultPlusExtra, NoDefaultPlusExtra or Unspecified.
type FeatureSpec interface {
	featureSpec()
}

// AllFeatures enables every feature of the crate.
type AllFeatures struct{}

// DefaultPlusExtra keeps the default features and adds Features.
type DefaultPlusExtra struct {
	Features []string
}

// NoDefaultPlusExtra disables the default features and enables only Features.
type NoDefaultPlusExtra struct {
	Features []string
}

// Unspecified leaves feature selection to cargo.
type Unspecified struct{}

func (AllFeatures) featureSpec()        {}
func (DefaultPlusExtra) featureSpec()   {}
func (NoDefaultPlusExtra) featureSpec() {}
func (Unspecified) featureSpec()        {}
