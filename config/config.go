package config

import (
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/router"
)

// BackendType selects the storage behind a mount.
type BackendType string

const (
	// TypeMemory is an in-memory filesystem that starts empty.
	TypeMemory BackendType = "memory"

	// TypeLocal is a directory on the local disk.
	TypeLocal BackendType = "local"

	// TypeMinIO is a MinIO or S3-compatible bucket.
	TypeMinIO BackendType = "minio"
)

// Config is the mount table of a router.
type Config struct {
	// WorkingDir is the absolute directory relative names resolve against.
	WorkingDir string `json:"workingDir" yaml:"workingDir"`

	// Mounts lists the backends in registration order.
	Mounts []Mount `json:"mounts" yaml:"mounts"`
}

// Mount binds a prefix to a backend.
type Mount struct {
	Prefix string      `json:"prefix" yaml:"prefix"`
	Type   BackendType `json:"type" yaml:"type"`

	// Root is the directory served by a local mount.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// Bound confines a local mount to Root, including through symlinks.
	Bound bool `json:"bound,omitempty" yaml:"bound,omitempty"`

	// MinIO holds the connection settings of a minio mount.
	MinIO *MinIO `json:"minio,omitempty" yaml:"minio,omitempty"`
}

// MinIO configures a bucket-backed mount.
type MinIO struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	AccessKey string `json:"accessKey" yaml:"accessKey"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
	UseSSL    bool   `json:"useSSL" yaml:"useSSL"`

	// Prefix namespaces every object key of the mount.
	Prefix string `json:"prefix" yaml:"prefix"`

	// PartSize is the multipart upload part size in bytes. Zero uses the
	// client default.
	PartSize int64 `json:"partSize,omitempty" yaml:"partSize,omitempty"`

	// RenameConcurrency bounds parallel copies during a directory rename.
	RenameConcurrency int `json:"renameConcurrency,omitempty" yaml:"renameConcurrency,omitempty"`

	// MaxFileSize caps the size a file may reach through the mount. Zero uses
	// the backend default.
	MaxFileSize int64 `json:"maxFileSize,omitempty" yaml:"maxFileSize,omitempty"`
}

// redacted replaces secrets in encoded output.
const redacted = "REDACTED"

// Default returns a configuration with a single in-memory system mount.
func Default() *Config {
	return &Config{
		WorkingDir: router.DefaultWorkingDir,
		Mounts:     []Mount{{Prefix: router.SystemPrefix, Type: TypeMemory}},
	}
}

// Mount returns the mount registered under prefix.
func (c *Config) Mount(prefix string) (Mount, bool) {
	for _, m := range c.Mounts {
		if m.Prefix == prefix {
			return m, true
		}
	}
	return Mount{}, false
}

// Redacted returns a copy of c with credentials masked.
func (c *Config) Redacted() *Config {
	out := &Config{WorkingDir: c.WorkingDir, Mounts: make([]Mount, len(c.Mounts))}
	for i, m := range c.Mounts {
		if m.MinIO != nil {
			mc := *m.MinIO
			if mc.AccessKey != "" {
				mc.AccessKey = redacted
			}
			if mc.SecretKey != "" {
				mc.SecretKey = redacted
			}
			m.MinIO = &mc
		}
		out.Mounts[i] = m
	}
	return out
}

// Validate checks the constraints the schema cannot express and those a
// configuration built in code may violate.
//
// Returns CodeInvalidConfig describing the first problem found.
func (c *Config) Validate() error {
	if !router.IsAbsolute(c.WorkingDir) {
		return invalidf("working directory %q is not absolute", c.WorkingDir)
	}

	seen := make(map[string]bool, len(c.Mounts))
	for i, m := range c.Mounts {
		if err := m.validate(); err != nil {
			return errors.WithContext(err, "mount", i)
		}
		if seen[m.Prefix] {
			return errors.WithContext(invalidf("prefix %q is mounted more than once", m.Prefix), "mount", i)
		}
		seen[m.Prefix] = true
	}

	if !seen[router.SystemPrefix] {
		return invalidf("no %q mount", router.SystemPrefix)
	}

	prefix, _, _ := router.SplitPrefix(c.WorkingDir)
	if !seen[prefix] {
		return invalidf("working directory %q is not on a mounted prefix", c.WorkingDir)
	}
	return nil
}

func (m Mount) validate() error {
	if err := router.ValidatePrefix(m.Prefix); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid mount prefix")
	}

	switch m.Type {
	case TypeMemory:
	case TypeLocal:
		if m.Root == "" {
			return invalidf("local mount %q has no root", m.Prefix)
		}
	case TypeMinIO:
		if m.MinIO == nil {
			return invalidf("minio mount %q has no minio settings", m.Prefix)
		}
		if m.MinIO.Bucket == "" {
			return invalidf("minio mount %q has no bucket", m.Prefix)
		}
	default:
		return invalidf("mount %q has unknown type %q", m.Prefix, m.Type)
	}
	return nil
}

func invalidf(format string, args ...interface{}) errors.PlatformError {
	return errors.Newf(errors.CodeInvalidConfig, format, args...)
}
