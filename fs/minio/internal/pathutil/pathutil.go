// Package pathutil provides path normalization and manipulation utilities
// for MinIO/S3 object keys.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Normalize cleans a path and ensures forward slashes.
// It applies: ToSlash → Clean → Trim slashes
// Returns "." for empty paths.
func Normalize(path string) string {
	if path == "" {
		return "."
	}

	// First convert backslashes to forward slashes (for Windows-style paths)
	path = strings.ReplaceAll(path, "\\", "/")

	// Clean the path (resolves . and ..)
	path = filepath.Clean("/" + path)

	// Convert to forward slashes again (filepath.Clean may use OS separator)
	path = filepath.ToSlash(path)

	// Trim leading and trailing slashes
	path = strings.Trim(path, "/")

	// Return "." if path is now empty
	if path == "" {
		return "."
	}

	return path
}

// NormalizePrefix normalizes the prefix path:
// - Converts backslashes to forward slashes
// - Removes leading and trailing slashes
// - Returns empty string if prefix is "." or empty.
func NormalizePrefix(prefix string) string {
	if prefix == "" || prefix == "." {
		return ""
	}
	if prefix = Normalize(prefix); prefix == "." {
		return ""
	}
	return prefix
}

// JoinPath joins a prefix with a name to create a full S3 key.
// The root of the namespace maps to the prefix itself.
func JoinPath(prefix, name string) string {
	name = Normalize(name)

	if name == "." {
		return prefix
	}
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// DirKey returns the key prefix under which the children of key live.
// The empty key is the bucket root.
func DirKey(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// IsWithin reports whether key lies strictly below dir.
func IsWithin(key, dir string) bool {
	return dir != key && strings.HasPrefix(key, DirKey(dir))
}
