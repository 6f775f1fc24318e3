package domain

const (
	// ConfigFileName is the default name of the build description.
	ConfigFileName = "cargojni.yaml"

	// LocalPropertiesFileName holds per-checkout overrides next to the build description.
	LocalPropertiesFileName = "local.properties"

	// NdkSourcePropertiesFileName records the NDK revision.
	NdkSourcePropertiesFileName = "source.properties"

	// DefaultBuildDirName is the build output tree below the project root.
	DefaultBuildDirName = "build"

	// LinkerWrapperDirName is the directory below the build tree holding the linker wrapper.
	LinkerWrapperDirName = "linker-wrapper"

	// LinkerWrapperShell is the POSIX wrapper script.
	LinkerWrapperShell = "linker-wrapper.sh"

	// LinkerWrapperBatch is the Windows wrapper script.
	LinkerWrapperBatch = "linker-wrapper.bat"

	// LinkerWrapperDriver is the Python driver both scripts delegate to.
	LinkerWrapperDriver = "linker-wrapper.py"

	// JniLibsDirName is the packaging tree below the build tree.
	JniLibsDirName = "rustJniLibs"

	// StateDirName is the internal state directory below the build tree.
	StateDirName = ".cargojni"

	// RecordsDirName holds build records below the state directory.
	RecordsDirName = "records"

	// DefaultStandaloneToolchainDirName is created in the system temp directory.
	DefaultStandaloneToolchainDirName = "rust-android-ndk-toolchains"

	// TargetPassthroughPrefix prefixes overrides forwarded to cargo for one target triple.
	TargetPassthroughPrefix = "RUST_ANDROID_GRADLE_TARGET_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission of extracted scripts (rwxr-xr-x).
	ExecPerm = 0o755
)
