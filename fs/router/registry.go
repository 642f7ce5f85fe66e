package router

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Registry maps schema prefixes to backend filesystems.
// Entries are never removed. It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	backends map[string]wire.FileSystem
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]wire.FileSystem)}
}

// Register associates prefix with backend.
// The prefix is given without its trailing colon.
func (r *Registry) Register(prefix string, backend wire.FileSystem) error {
	if err := ValidatePrefix(prefix); err != nil {
		return err
	}
	if backend == nil {
		return errors.Newf(errors.CodeInvalidInput, "nil backend for prefix %q", prefix)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[prefix]; exists {
		return errors.WithContext(
			errors.Newf(errors.CodeAlreadyExists, "filesystem %q already registered", prefix),
			"prefix", prefix,
		)
	}
	r.backends[prefix] = backend
	return nil
}

// ValidatePrefix rejects prefixes that could not be resolved back out of an
// absolute path: the empty string and anything containing ':' or '/'.
func ValidatePrefix(prefix string) error {
	if prefix == "" || strings.ContainsAny(prefix, ":/") {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "invalid filesystem prefix %q", prefix),
			"prefix", prefix,
		)
	}
	return nil
}

// Lookup returns the backend registered under prefix.
func (r *Registry) Lookup(prefix string) (wire.FileSystem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	backend, ok := r.backends[prefix]
	return backend, ok
}

// Prefixes returns the registered prefixes in sorted order.
func (r *Registry) Prefixes() []string {
	r.mu.Lock()
	prefixes := make([]string, 0, len(r.backends))
	for prefix := range r.backends {
		prefixes = append(prefixes, prefix)
	}
	r.mu.Unlock()

	sort.Strings(prefixes)
	return prefixes
}

// Resolved is the result of resolving an absolute path.
type Resolved struct {
	// Backend owns the path.
	Backend wire.FileSystem
	// Prefix is the registry key that matched, without the colon.
	Prefix string
	// Path is the remainder after the prefix. It keeps its leading slash.
	Path string
}

// Resolve finds the backend that owns an absolute path.
//
// Resolve panics if p is not absolute; callers join relative names against
// the working directory first. An unregistered prefix is reported as
// CodeUnsupported.
func (r *Registry) Resolve(p string) (Resolved, error) {
	if !IsAbsolute(p) {
		panic(fmt.Sprintf("router: resolve called with non-absolute path %q", p))
	}

	prefix, rest, _ := SplitPrefix(p)
	backend, ok := r.Lookup(prefix)
	if !ok {
		return Resolved{}, errors.WithContext(
			errors.New(errors.CodeUnsupported, "operation not supported on this path"),
			"path", p,
		)
	}

	return Resolved{Backend: backend, Prefix: prefix, Path: rest}, nil
}
