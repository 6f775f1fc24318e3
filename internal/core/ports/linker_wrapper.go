package ports

// LinkerWrapperGenerator extracts the scripts cargo uses as linker when cross-compiling.
//
//go:generate mockgen -source=linker_wrapper.go -destination=mocks/mock_linker_wrapper.go -package=mocks
type LinkerWrapperGenerator interface {
	// Generate writes the wrapper files into dir and returns their paths.
	Generate(dir string) ([]string, error)
}
