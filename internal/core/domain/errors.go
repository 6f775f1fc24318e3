package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingModule is returned when the build description does not name a cargo module.
	ErrMissingModule = zerr.New("module must be set")

	// ErrMissingLibname is returned when the build description does not name a library.
	ErrMissingLibname = zerr.New("libname must be set")

	// ErrMissingTargets is returned when no targets are declared.
	ErrMissingTargets = zerr.New("targets must be set")

	// ErrUnknownTarget is returned when a declared target has no catalog entry.
	ErrUnknownTarget = zerr.New("target is not recognized")

	// ErrMissingAPILevel is returned when one or more targets have no API level.
	ErrMissingAPILevel = zerr.New("apiLevels missing entries")

	// ErrConflictingAPILevels is returned when both apiLevel and apiLevels are set.
	ErrConflictingAPILevels = zerr.New("cannot set both apiLevel and apiLevels")

	// ErrAPILevelTooLow is returned when a 64-bit architecture is paired with an API level below 21.
	ErrAPILevelTooLow = zerr.New("cannot target 64-bit architecture with API level < 21")

	// ErrInvalidFlag is returned when a boolean override holds something other than 1, 0, true or false.
	ErrInvalidFlag = zerr.New("flag property must be 1, 0, true or false")

	// ErrMissingToolchainDirectory is returned when standalone toolchains are enabled without a directory.
	ErrMissingToolchainDirectory = zerr.New("toolchainDirectory must be set for standalone toolchains")

	// ErrConflictingFeatures is returned when more than one feature selection is configured.
	ErrConflictingFeatures = zerr.New("features must select only one of all, default or noDefault")

	// ErrTargetNotDeclared is returned when a requested target is not part of the build description.
	ErrTargetNotDeclared = zerr.New("target is not declared")

	// ErrModuleNotFound is returned when the module directory cannot be resolved.
	ErrModuleNotFound = zerr.New("failed to resolve module directory")

	// ErrNdkNotFound is returned when no NDK installation can be located.
	ErrNdkNotFound = zerr.New("could not locate an Android NDK")

	// ErrNdkVersionInvalid is returned when the NDK version has no leading integer.
	ErrNdkVersionInvalid = zerr.New("invalid NDK version")

	// ErrConfigNotFound is returned when the build description file does not exist.
	ErrConfigNotFound = zerr.New("could not find build description")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPropertiesReadFailed is returned when a properties file cannot be parsed.
	ErrPropertiesReadFailed = zerr.New("failed to read properties file")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCargoFailed is returned when cargo exits with a non-zero status.
	ErrCargoFailed = zerr.New("cargo build failed")

	// ErrToolchainGenerationFailed is returned when the standalone toolchain generator fails.
	ErrToolchainGenerationFailed = zerr.New("failed to generate standalone toolchain")

	// ErrLinkerWrapperFailed is returned when the linker wrapper cannot be extracted.
	ErrLinkerWrapperFailed = zerr.New("failed to extract linker wrapper")

	// ErrArtifactCopyFailed is returned when built libraries cannot be copied into the packaging tree.
	ErrArtifactCopyFailed = zerr.New("failed to copy build artifacts")

	// ErrStoreCreateFailed is returned when the build record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build record store directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)

// kindError attaches a cause to a sentinel.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string   { return e.kind.Error() + ": " + e.cause.Error() }
func (e *kindError) Message() string { return e.kind.Error() }
func (e *kindError) Unwrap() error   { return e.cause }

func (e *kindError) Is(target error) bool {
	return target == e.kind //nolint:errorlint // sentinels are compared by identity
}

// Wrap reports cause as an instance of the sentinel kind. The result matches kind
// under errors.Is and unwraps to cause. A nil cause yields nil.
func Wrap(kind, cause error) error {
	if cause == nil {
		return nil
	}
	return &kindError{kind: kind, cause: cause}
}
