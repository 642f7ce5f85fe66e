package core

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// CopyOption configures CopyFromFS.
type CopyOption func(*copyConfig) error

type copyConfig struct {
	exclude []glob.Glob
}

// WithExclude skips files whose path relative to srcRoot matches any of the
// glob patterns. '*' does not cross '/' and '**' does.
func WithExclude(patterns ...string) CopyOption {
	return func(c *copyConfig) error {
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
			}
			c.exclude = append(c.exclude, g)
		}
		return nil
	}
}

func (c *copyConfig) excluded(rel string) bool {
	for _, g := range c.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// CopyFromFS copies every regular file under srcRoot in a read-only
// filesystem (typically embed.FS or os.DirFS) into dst below dstRoot,
// preserving relative paths.
//
// dstRoot is a router path such as "system:/seed". Directories are not
// created explicitly; backends create parents when a file is created.
//
// Example:
//
//	//go:embed templates/*
//	var templatesFS embed.FS
//
//	err := core.CopyFromFS(ctx, templatesFS, r, "templates", "system:/templates",
//	    core.WithExclude("**.tmp"))
func CopyFromFS(ctx context.Context, src fs.FS, dst FileFS, srcRoot, dstRoot string, opts ...CopyOption) error {
	var cfg copyConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		// Skip directories - backends create parents on demand
		if d.IsDir() {
			return nil
		}

		rel := filePath
		if srcRoot != "." && srcRoot != "" {
			rel = strings.TrimPrefix(filePath, srcRoot)
			rel = strings.TrimPrefix(rel, "/")
		}
		if rel != "" && cfg.excluded(rel) {
			return nil
		}

		return copyOne(ctx, src, dst, filePath, path.Join(dstRoot, rel))
	})
}

func copyOne(ctx context.Context, src fs.FS, dst FileFS, from, to string) error {
	in, err := src.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := dst.Open(ctx, to, NewOpenOptions().Write(true).Create(true).Truncate(true))
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Flush(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
