// Package utils holds small filesystem and text helpers shared by more
// than one lexarbor package, so each doesn't reimplement the same
// byte-level or path-level logic slightly differently.
package utils

import "os"

// FileExists reports whether path exists and is statable. It does not
// distinguish "does not exist" from other stat failures (permission,
// broken mount); callers that need that distinction should call os.Stat
// directly.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dirPath and any missing parents, matching the
// permissions lexarbor uses for its own config and dictionary
// directories.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}
