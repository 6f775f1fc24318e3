package domain

import "runtime"

// HostPlatform identifies the machine running the build, using GOOS/GOARCH names.
type HostPlatform struct {
	OS   string
	Arch string
}

// CurrentHost returns the platform of the running process.
func CurrentHost() HostPlatform {
	return HostPlatform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// IsWindows reports whether the host runs Windows.
func (h HostPlatform) IsWindows() bool {
	return h.OS == "windows"
}

// NdkHostTag returns the directory name of the NDK's prebuilt LLVM toolchain for this host.
// The NDK ships a single x86_64 build for macOS and Linux; Apple silicon runs it under Rosetta.
func (h HostPlatform) NdkHostTag() string {
	switch h.OS {
	case "windows":
		if h.Arch == "amd64" {
			return "windows-x86_64"
		}
		return "windows"
	case "darwin":
		return "darwin-x86_64"
	default:
		return "linux-x86_64"
	}
}

// LinkerWrapperScript returns the wrapper script cargo should use as its linker on this host.
func (h HostPlatform) LinkerWrapperScript() string {
	if h.IsWindows() {
		return LinkerWrapperBatch
	}
	return LinkerWrapperShell
}
