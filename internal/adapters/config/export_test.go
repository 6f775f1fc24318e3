package config

// SetTempDir replaces the directory used for default standalone toolchains.
func (l *Loader) SetTempDir(dir string) {
	l.tempDir = func() string { return dir }
}
