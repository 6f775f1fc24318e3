package ports

// ArtifactCopier copies built libraries into the packaging tree.
//
//go:generate mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactCopier interface {
	// Copy copies the files of srcDir matching any of patterns into destDir and
	// returns the destination paths.
	Copy(srcDir, destDir string, patterns []string) ([]string, error)
}
