// Package minio serves a MinIO or S3-compatible bucket as a router backend,
// implementing the wire.FileSystem contract.
package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

const (
	// DefaultPartSize is the upload part size used when Config.PartSize is
	// zero. It is also the smallest part size S3 accepts.
	DefaultPartSize int64 = 5 << 20

	// DefaultRenameConcurrency is the number of objects copied at once by
	// RenameDirectory when Config.RenameConcurrency is zero.
	DefaultRenameConcurrency = 10

	// DefaultMaxFileSize caps how large a file may grow through a handle when
	// Config.MaxFileSize is zero. Handles hold the whole object in memory once
	// written, so the cap bounds their memory use.
	DefaultMaxFileSize int64 = 1 << 30
)

// Config describes the bucket a MinioFS serves and how it talks to it.
type Config struct {
	// Endpoint is the server address, such as "localhost:9000".
	Endpoint string

	// Bucket holds every object of the filesystem. It must already exist.
	Bucket string

	// AccessKey and SecretKey are static V4 credentials.
	AccessKey string
	SecretKey string

	// UseSSL selects HTTPS.
	UseSSL bool

	// Prefix roots the filesystem at a key prefix inside the bucket, so
	// several filesystems can share one bucket. Wire path "/a" maps to
	// "<Prefix>/a".
	Prefix string

	// Client replaces the connection settings above when set.
	Client *minio.Client

	// PartSize is the multipart upload part size for flushes and CreateFile.
	PartSize int64

	// RenameConcurrency bounds the parallel copies of RenameDirectory.
	RenameConcurrency int

	// MaxFileSize is the largest size CreateFile, Write and SetSize may
	// produce. Larger requests fail with wire.ErrorCodeNoSpaceLeft.
	MaxFileSize int64
}

// validate reports the first problem with c. A bucket is always required;
// the connection settings are only required without a Client.
func (c *Config) validate() error {
	switch {
	case c.Bucket == "":
		return fmt.Errorf("bucket is required")
	case c.PartSize < 0:
		return fmt.Errorf("part size must not be negative")
	case c.PartSize > 0 && c.PartSize < DefaultPartSize:
		return fmt.Errorf("part size must be at least %d bytes", DefaultPartSize)
	case c.RenameConcurrency < 0:
		return fmt.Errorf("rename concurrency must not be negative")
	case c.MaxFileSize < 0:
		return fmt.Errorf("max file size must not be negative")
	case c.Client != nil:
		return nil
	case c.Endpoint == "":
		return fmt.Errorf("endpoint is required without a client")
	case c.AccessKey == "":
		return fmt.Errorf("access key is required without a client")
	case c.SecretKey == "":
		return fmt.Errorf("secret key is required without a client")
	}
	return nil
}

// withDefaults returns c with zero tuning fields replaced by their defaults.
func (c Config) withDefaults() Config {
	if c.PartSize == 0 {
		c.PartSize = DefaultPartSize
	}
	if c.RenameConcurrency == 0 {
		c.RenameConcurrency = DefaultRenameConcurrency
	}
	if c.MaxFileSize == 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	return c
}
