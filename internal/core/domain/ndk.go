package domain

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultNdkVersion is assumed when an NDK carries no source.properties revision.
const DefaultNdkVersion = "0.0"

// Ndk is an installed Android NDK.
type Ndk struct {
	Path    string
	Version string
}

// MajorVersion returns the leading dot-separated integer of the version.
func (n Ndk) MajorVersion() (int, error) {
	head, _, _ := strings.Cut(n.Version, ".")
	major, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, zerr.With(zerr.Wrap(ErrNdkVersionInvalid, ""), "version", n.Version)
	}
	return major, nil
}

// PrebuiltToolchainDir returns the NDK's LLVM toolchain directory for host.
func (n Ndk) PrebuiltToolchainDir(host HostPlatform) string {
	return filepath.Join(n.Path, "toolchains", "llvm", "prebuilt", host.NdkHostTag())
}

// StandaloneToolchainScript returns the path of make_standalone_toolchain.py.
func (n Ndk) StandaloneToolchainScript() string {
	return filepath.Join(n.Path, "build", "tools", "make_standalone_toolchain.py")
}
