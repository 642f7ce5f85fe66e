// Command vfsctl drives a virtual filesystem router from the command line.
//
// Usage:
//
//	vfsctl [flags] <command> [args]
//
// The mount table is read from -config; without it a single in-memory
// system mount is used. Commands:
//
//	cat <path>...            write files to stdout
//	put [-exclude glob]... <local> <path>
//	                         copy a local file or directory tree into the router
//	cp <from> <to>           copy a file, possibly between mounts
//	mv <old> <new>           rename a file or directory within one mount
//	rm <path>...             remove files
//	rmdir <path>...          remove empty directories
//	mounts                   list the mount table
//	config                   print the effective configuration
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmgilman/go/vfs/config"
	"github.com/lmittmann/tint"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run parses args and executes one command. It returns the process exit
// code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("vfsctl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "mount table (.cue, .json, .yaml)")
	envFile := flags.String("env", ".env", "dotenv file loaded before the config")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: vfsctl [flags] <command> [args]\n\ncommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-8s %s\n", c.name, c.summary)
		}
		fmt.Fprintf(stderr, "\nflags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	name, rest := flags.Arg(0), flags.Args()[1:]
	cmd, ok := lookup(name)
	if !ok {
		logger.Error("unknown command", "command", name)
		flags.Usage()
		return 2
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		fmt.Fprintf(stderr, "usage: vfsctl %s %s\n", cmd.name, cmd.args)
		return 2
	}

	if err := config.LoadDotenv(*envFile); err != nil {
		logger.Error("failed to load environment", "err", err)
		return 1
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(ctx, *configPath)
		if err != nil {
			logger.Error("failed to load config", "path", *configPath, "err", err)
			return 1
		}
		cfg = loaded
	}

	env := &environment{cfg: cfg, logger: logger, stdout: stdout}
	if err := cmd.run(ctx, env, rest); err != nil {
		logger.Error(cmd.name+" failed", "err", err)
		return 1
	}
	return 0
}
