package domain

import "time"

// ArtifactRecord is one library copied into the packaging tree.
type ArtifactRecord struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// BuildRecord describes the last successful build of a target.
type BuildRecord struct {
	Target      string           `json:"target"`
	Triple      string           `json:"triple"`
	RunID       string           `json:"run_id"`
	Fingerprint string           `json:"fingerprint"`
	Artifacts   []ArtifactRecord `json:"artifacts"`
	Finished    time.Time        `json:"finished"`
}
