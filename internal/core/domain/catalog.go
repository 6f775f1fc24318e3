package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Catalog is an ordered, read-only set of toolchains keyed by platform id.
type Catalog struct {
	toolchains []Toolchain
}

// NewCatalog creates a catalog from the given toolchains, preserving their order.
func NewCatalog(toolchains ...Toolchain) Catalog {
	return Catalog{toolchains: slices.Clone(toolchains)}
}

// DefaultCatalog returns the desktop triples and the NDK prebuilt Android ABIs.
// "darwin" and "darwin-x86-64" both map to x86_64-apple-darwin; the shorter id predates
// Apple silicon and is kept so existing build descriptions keep working.
func DefaultCatalog() Catalog {
	return NewCatalog(append(desktopToolchains(), prebuiltToolchains...)...)
}

// StandaloneCatalog returns the desktop triples and the Android ABIs built with NDK
// standalone toolchains (make_standalone_toolchain.py, removed in NDK r23).
func StandaloneCatalog() Catalog {
	return NewCatalog(append(desktopToolchains(), generatedToolchains...)...)
}

func desktopToolchains() []Toolchain {
	return []Toolchain{
		{
			Platform: "linux-x86-64",
			Kind:     DesktopNative,
			Target:   "x86_64-unknown-linux-gnu",
			Folder:   "desktop/linux-x86-64",
		},
		{
			Platform: "darwin",
			Kind:     DesktopNative,
			Target:   "x86_64-apple-darwin",
			Folder:   "desktop/darwin",
		},
		{
			Platform: "darwin-x86-64",
			Kind:     DesktopNative,
			Target:   "x86_64-apple-darwin",
			Folder:   "desktop/darwin-x86-64",
		},
		{
			Platform: "darwin-aarch64",
			Kind:     DesktopNative,
			Target:   "aarch64-apple-darwin",
			Folder:   "desktop/darwin-aarch64",
		},
		{
			Platform: "win32-x86-64-msvc",
			Kind:     DesktopNative,
			Target:   "x86_64-pc-windows-msvc",
			Folder:   "desktop/win32-x86-64",
		},
		{
			Platform: "win32-x86-64-gnu",
			Kind:     DesktopNative,
			Target:   "x86_64-pc-windows-gnu",
			Folder:   "desktop/win32-x86-64",
		},
	}
}

var prebuiltToolchains = []Toolchain{
	{
		Platform:       "arm",
		Kind:           AndroidPrebuilt,
		Target:         "armv7-linux-androideabi",
		CompilerTriple: "armv7a-linux-androideabi",
		BinutilsTriple: "arm-linux-androideabi",
		Folder:         "android/armeabi-v7a",
	},
	{
		Platform:       "arm64",
		Kind:           AndroidPrebuilt,
		Target:         "aarch64-linux-android",
		CompilerTriple: "aarch64-linux-android",
		BinutilsTriple: "aarch64-linux-android",
		Folder:         "android/arm64-v8a",
	},
	{
		Platform:       "x86",
		Kind:           AndroidPrebuilt,
		Target:         "i686-linux-android",
		CompilerTriple: "i686-linux-android",
		BinutilsTriple: "i686-linux-android",
		Folder:         "android/x86",
	},
	{
		Platform:       "x86_64",
		Kind:           AndroidPrebuilt,
		Target:         "x86_64-linux-android",
		CompilerTriple: "x86_64-linux-android",
		BinutilsTriple: "x86_64-linux-android",
		Folder:         "android/x86_64",
	},
}

var generatedToolchains = []Toolchain{
	{
		Platform:       "arm",
		Kind:           AndroidGenerated,
		Target:         "armv7-linux-androideabi",
		CompilerTriple: "arm-linux-androideabi",
		BinutilsTriple: "arm-linux-androideabi",
		Folder:         "android/armeabi-v7a",
	},
	{
		Platform:       "arm64",
		Kind:           AndroidGenerated,
		Target:         "aarch64-linux-android",
		CompilerTriple: "aarch64-linux-android",
		BinutilsTriple: "aarch64-linux-android",
		Folder:         "android/arm64-v8a",
	},
	{
		Platform:       "x86",
		Kind:           AndroidGenerated,
		Target:         "i686-linux-android",
		CompilerTriple: "i686-linux-android",
		BinutilsTriple: "i686-linux-android",
		Folder:         "android/x86",
	},
	{
		Platform:       "x86_64",
		Kind:           AndroidGenerated,
		Target:         "x86_64-linux-android",
		CompilerTriple: "x86_64-linux-android",
		BinutilsTriple: "x86_64-linux-android",
		Folder:         "android/x86_64",
	},
}

// Toolchains returns the catalog entries in declaration order.
func (c Catalog) Toolchains() []Toolchain {
	return slices.Clone(c.toolchains)
}

// Platforms returns every platform id, sorted lexicographically.
func (c Catalog) Platforms() []string {
	platforms := make([]string, 0, len(c.toolchains))
	for _, tc := range c.toolchains {
		platforms = append(platforms, tc.Platform)
	}
	slices.Sort(platforms)
	return platforms
}

// Lookup returns the toolchain registered for platform.
// Unknown ids fail with ErrUnknownTarget, carrying the sorted list of valid ids.
func (c Catalog) Lookup(platform string) (Toolchain, error) {
	for _, tc := range c.toolchains {
		if tc.Platform == platform {
			return tc, nil
		}
	}

	err := zerr.Wrap(ErrUnknownTarget, "")
	err = zerr.With(err, "target", platform)
	return Toolchain{}, zerr.With(err, "recognized", c.Platforms())
}
