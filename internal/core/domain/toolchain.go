package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ToolchainKind selects how the C toolchain for a target is located.
type ToolchainKind uint8

const (
	// DesktopNative builds a desktop triple with the host's own C toolchain.
	DesktopNative ToolchainKind = iota + 1
	// AndroidPrebuilt uses the LLVM toolchain shipped inside the NDK.
	AndroidPrebuilt
	// AndroidGenerated uses a standalone toolchain produced by make_standalone_toolchain.py.
	AndroidGenerated
)

// String returns the kind's display name.
func (k ToolchainKind) String() string {
	switch k {
	case DesktopNative:
		return "desktop"
	case AndroidPrebuilt:
		return "android-prebuilt"
	case AndroidGenerated:
		return "android-generated"
	}
	return fmt.Sprintf("ToolchainKind(%d)", uint8(k))
}

// minimum64BitAPILevel is the first Android API level with 64-bit ABIs.
const minimum64BitAPILevel = 21

// ndkLLVMArMajorVersion is the first NDK release that dropped GNU binutils.
const ndkLLVMArMajorVersion = 23

// Toolchain describes one buildable platform.
type Toolchain struct {
	// Platform is the user-facing id, e.g. "arm64" or "linux-x86-64".
	Platform string
	Kind     ToolchainKind
	// Target is the rustc target triple.
	Target string
	// CompilerTriple prefixes the clang driver names.
	CompilerTriple string
	// BinutilsTriple prefixes the binutils names in NDKs older than r23.
	BinutilsTriple string
	// Folder is the output folder below the packaging tree, e.g. "android/arm64-v8a".
	Folder string
}

// IsDesktop reports whether the toolchain builds with the host compiler.
func (t Toolchain) IsDesktop() bool {
	return t.Kind == DesktopNative
}

// Is64Bit reports whether the platform is a 64-bit architecture.
func (t Toolchain) Is64Bit() bool {
	return strings.HasSuffix(t.Platform, "64")
}

// CheckAPILevel rejects API levels that cannot host the platform.
func (t Toolchain) CheckAPILevel(apiLevel int) error {
	if t.IsDesktop() || !t.Is64Bit() || apiLevel >= minimum64BitAPILevel {
		return nil
	}
	err := zerr.Wrap(ErrAPILevelTooLow, "")
	err = zerr.With(err, "target", t.Platform)
	return zerr.With(err, "api_level", apiLevel)
}

// EnvTriple returns the target triple in the form cargo uses for environment
// variable names: upper-cased with dashes replaced by underscores.
func (t Toolchain) EnvTriple() string {
	return strings.ToUpper(strings.ReplaceAll(t.Target, "-", "_"))
}

// InstallDirName is the directory a standalone toolchain for apiLevel is installed into.
func (t Toolchain) InstallDirName(apiLevel int) string {
	return fmt.Sprintf("%s-%d", t.Platform, apiLevel)
}

// CC returns the C compiler path relative to the toolchain directory.
func (t Toolchain) CC(apiLevel int, host HostPlatform) string {
	return t.clangPath("clang", apiLevel, host)
}

// CXX returns the C++ compiler path relative to the toolchain directory.
func (t Toolchain) CXX(apiLevel int, host HostPlatform) string {
	return t.clangPath("clang++", apiLevel, host)
}

// AR returns the archiver path relative to the toolchain directory.
func (t Toolchain) AR(apiLevel, ndkMajor int) string {
	if t.IsDesktop() {
		return ""
	}
	if ndkMajor >= ndkLLVMArMajorVersion {
		return filepath.Join("bin", "llvm-ar")
	}

	switch t.Kind {
	case AndroidPrebuilt:
		return filepath.Join("bin", t.BinutilsTriple+"-ar")
	case AndroidGenerated:
		return filepath.Join(t.InstallDirName(apiLevel), "bin", t.BinutilsTriple+"-ar")
	case DesktopNative:
	}
	return ""
}

func (t Toolchain) clangPath(driver string, apiLevel int, host HostPlatform) string {
	if host.IsWindows() {
		driver += ".cmd"
	}

	switch t.Kind {
	case AndroidPrebuilt:
		return filepath.Join("bin", fmt.Sprintf("%s%d-%s", t.CompilerTriple, apiLevel, driver))
	case AndroidGenerated:
		return filepath.Join(t.InstallDirName(apiLevel), "bin", t.CompilerTriple+"-"+driver)
	case DesktopNative:
	}
	return ""
}
