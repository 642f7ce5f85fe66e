package config

import (
	"io/fs"
	"os"
	"sort"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/joho/godotenv"
)

// LoadDotenv loads variables from the given .env files into the process
// environment, defaulting to ".env". Missing files are skipped. Variables
// that are already set are left alone.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.WithContext(wrapf(err, "failed to load dotenv file"), "file_path", p)
		}
	}
	return nil
}

// expand substitutes ${NAME} references in fields that commonly hold
// secrets or host-specific values.
func (c *Config) expand(lookup func(string) (string, bool)) error {
	missing := make(map[string]bool)
	expand := func(s string) string {
		return os.Expand(s, func(name string) string {
			v, ok := lookup(name)
			if !ok {
				missing[name] = true
			}
			return v
		})
	}

	for i := range c.Mounts {
		m := &c.Mounts[i]
		m.Root = expand(m.Root)
		if m.MinIO != nil {
			m.MinIO.Endpoint = expand(m.MinIO.Endpoint)
			m.MinIO.Bucket = expand(m.MinIO.Bucket)
			m.MinIO.AccessKey = expand(m.MinIO.AccessKey)
			m.MinIO.SecretKey = expand(m.MinIO.SecretKey)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return errors.WithContext(
		errors.Newf(errors.CodeInvalidConfig, "undefined environment variables: %v", names),
		"variables", names,
	)
}
