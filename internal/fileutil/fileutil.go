// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./notes.yaml" -> true (relative path)
//   - "/etc/pre2tex.yaml" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReplaceExt returns path with its extension swapped for newExt
// (which must include the leading dot). A path without an extension
// gets newExt appended.
func ReplaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// ReadTextFile reads the file and returns its content as a string.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided by design
	if err != nil {
		return "", err
	}
	return string(data), nil
}
