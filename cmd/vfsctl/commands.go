package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/jmgilman/go/vfs/config"
	"github.com/jmgilman/go/vfs/fs/core"
	"github.com/jmgilman/go/vfs/fs/mount"
	"github.com/jmgilman/go/vfs/fs/router"
)

// environment is what every command runs against.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer

	router *router.Router
	table  *mount.Table
}

// boot mounts the configured backends on first use.
func (e *environment) boot(ctx context.Context) (*router.Router, error) {
	if e.router != nil {
		return e.router, nil
	}
	r, table, err := mount.Boot(ctx, e.cfg, mount.WithLogger(e.logger))
	if err != nil {
		return nil, err
	}
	e.router, e.table = r, table
	return r, nil
}

type command struct {
	name    string
	args    string
	summary string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(ctx context.Context, env *environment, args []string) error
}

var commands = []command{
	{"cat", "<path>...", "write files to stdout", 1, -1, runCat},
	{"put", "[-exclude glob]... <local> <path>", "copy a local file or tree into the router", 2, -1, runPut},
	{"cp", "<from> <to>", "copy a file", 2, 2, runCopy},
	{"mv", "<old> <new>", "rename within one mount", 2, 2, runMove},
	{"rm", "<path>...", "remove files", 1, -1, runRemove},
	{"rmdir", "<path>...", "remove empty directories", 1, -1, runRmdir},
	{"mounts", "", "list the mount table", 0, 0, runMounts},
	{"config", "", "print the effective configuration", 0, 0, runConfig},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func runCat(ctx context.Context, env *environment, args []string) error {
	r, err := env.boot(ctx)
	if err != nil {
		return err
	}

	for _, name := range args {
		f, err := r.Open(ctx, name, core.ReadOnly())
		if err != nil {
			return err
		}
		_, err = io.Copy(env.stdout, f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if closeErr != nil {
			return closeErr
		}
	}
	return nil
}

// patterns collects repeated -exclude flags.
type patterns []string

func (p *patterns) String() string { return strings.Join(*p, ",") }

func (p *patterns) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func runPut(ctx context.Context, env *environment, args []string) error {
	var exclude patterns
	flags := flag.NewFlagSet("put", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Var(&exclude, "exclude", "skip files matching the glob (repeatable)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("put takes a local path and a router path, got %d arguments", flags.NArg())
	}
	args = flags.Args()

	r, err := env.boot(ctx)
	if err != nil {
		return err
	}

	local, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	info, err := os.Stat(local)
	if err != nil {
		return err
	}

	src := os.DirFS(filepath.Dir(local))
	if err := core.CopyFromFS(ctx, src, r, filepath.Base(local), args[1], core.WithExclude(exclude...)); err != nil {
		return err
	}

	if info.IsDir() {
		env.logger.InfoContext(ctx, "copied tree", "from", local, "to", args[1], "excluded", exclude.String())
	} else {
		env.logger.InfoContext(ctx, "copied file", "from", local, "to", args[1], "size", humanize.Bytes(uint64(info.Size())))
	}
	return nil
}

func runCopy(ctx context.Context, env *environment, args []string) error {
	r, err := env.boot(ctx)
	if err != nil {
		return err
	}

	n, err := r.Copy(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	env.logger.InfoContext(ctx, "copied file", "from", args[0], "to", args[1], "size", humanize.Bytes(uint64(n)))
	return nil
}

func runMove(ctx context.Context, env *environment, args []string) error {
	r, err := env.boot(ctx)
	if err != nil {
		return err
	}
	return r.Rename(ctx, args[0], args[1])
}

func runRemove(ctx context.Context, env *environment, args []string) error {
	r, err := env.boot(ctx)
	if err != nil {
		return err
	}
	for _, name := range args {
		if err := r.Unlink(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func runRmdir(ctx context.Context, env *environment, args []string) error {
	r, err := env.boot(ctx)
	if err != nil {
		return err
	}
	for _, name := range args {
		if err := r.Rmdir(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func runMounts(ctx context.Context, env *environment, _ []string) error {
	if _, err := env.boot(ctx); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARTITION\tPREFIX\tTYPE\tSOURCE")
	for i, p := range env.table.Partitions() {
		m, _ := env.cfg.Mount(p.Prefix)
		fmt.Fprintf(tw, "0:%d\t%s:\t%s\t%s\n", i, p.Prefix, p.Type, source(m))
	}
	return tw.Flush()
}

func source(m config.Mount) string {
	switch m.Type {
	case config.TypeLocal:
		return m.Root
	case config.TypeMinIO:
		return fmt.Sprintf("%s/%s", m.MinIO.Endpoint, m.MinIO.Bucket)
	default:
		return "-"
	}
}

func runConfig(_ context.Context, env *environment, _ []string) error {
	return config.EncodeTo(env.stdout, env.cfg.Redacted())
}
