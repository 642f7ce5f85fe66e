package router

import (
	"path"
	"strings"
)

// SplitPrefix splits p into its schema prefix and remainder.
// "system:/a/b" yields ("system", "/a/b", true). A path without a colon, or
// whose colon comes after a slash, has no prefix.
func SplitPrefix(p string) (prefix, rest string, ok bool) {
	i := strings.IndexByte(p, ':')
	if i <= 0 {
		return "", p, false
	}
	if strings.ContainsRune(p[:i], '/') {
		return "", p, false
	}
	return p[:i], p[i+1:], true
}

// IsAbsolute reports whether p has the form "<prefix>:/...".
func IsAbsolute(p string) bool {
	_, rest, ok := SplitPrefix(p)
	return ok && strings.HasPrefix(rest, "/")
}

// Join resolves name against the absolute directory cwd. Absolute names are
// returned unchanged. The remainder is cleaned with path.Join semantics and
// never climbs above the prefix root.
func Join(cwd, name string) string {
	if IsAbsolute(name) {
		return name
	}
	prefix, rest, _ := SplitPrefix(cwd)
	return prefix + ":" + path.Join("/", rest, name)
}
