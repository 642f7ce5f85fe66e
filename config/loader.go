package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/vfs/errors"
)

//go:embed schema.cue
var schemaSource []byte

// Loader reads configuration files from a filesystem.
// It owns the CUE context the schema and every loaded document are built in.
type Loader struct {
	fs        billy.Filesystem
	cueCtx    *cue.Context
	lookup    func(string) (string, bool)
	schema    cue.Value
	schemaErr error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLookupEnv sets the function used to expand ${NAME} references.
// The default is os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) LoaderOption {
	return func(l *Loader) {
		if lookup != nil {
			l.lookup = lookup
		}
	}
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem billy.Filesystem, opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:     filesystem,
		cueCtx: cuecontext.New(),
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}

	schema := l.cueCtx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	l.schema = schema.LookupPath(cue.ParsePath("#Config"))
	l.schemaErr = l.schema.Err()
	return l
}

// Load reads the configuration file at path on the local disk.
func Load(ctx context.Context, path string, opts ...LoaderOption) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, wrapf(err, "resolve config path %q", path)
	}
	return NewLoader(osfs.New(filepath.Dir(abs)), opts...).LoadFile(ctx, filepath.Base(abs))
}

// LoadFile reads and decodes a configuration file. The format is chosen by
// extension: .cue, .json, .yaml or .yml.
func (l *Loader) LoadFile(ctx context.Context, name string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithContext(wrapf(err, "context cancelled"), "file_path", name)
	}

	data, err := util.ReadFile(l.fs, name)
	if err != nil {
		return nil, errors.WithContext(wrapf(err, "failed to read config file"), "file_path", name)
	}
	return l.LoadBytes(ctx, data, name)
}

// LoadBytes decodes configuration source. The filename selects the format
// and is used in error positions.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapf(err, "context cancelled")
	}
	if l.schemaErr != nil {
		return nil, wrapf(l.schemaErr, "embedded schema is invalid")
	}

	data, err := l.compile(source, filename)
	if err != nil {
		return nil, err
	}

	unified := l.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		perr := wrapf(err, "validation failed")
		perr = errors.WithContext(perr, "file_path", filename)
		return nil, errors.WithContext(perr, "issues", extractIssues(err))
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, errors.WithContext(wrapf(err, "failed to decode config"), "file_path", filename)
	}

	if err := cfg.expand(l.lookup); err != nil {
		return nil, errors.WithContext(err, "file_path", filename)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithContext(err, "file_path", filename)
	}
	return &cfg, nil
}

func (l *Loader) compile(source []byte, filename string) (cue.Value, error) {
	var val cue.Value
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		f, err := cueyaml.Extract(filename, source)
		if err != nil {
			return cue.Value{}, errors.WithContext(wrapf(err, "failed to parse YAML"), "file_path", filename)
		}
		val = l.cueCtx.BuildFile(f)
	case ".cue", ".json", "":
		// JSON is a subset of CUE.
		val = l.cueCtx.CompileBytes(source, cue.Filename(filename))
	default:
		return cue.Value{}, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unsupported config format %q", ext),
			"file_path", filename,
		)
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, errors.WithContext(wrapf(err, "failed to compile config"), "file_path", filename)
	}
	return val, nil
}

// Issue is a single schema violation.
type Issue struct {
	// Path is the field path, e.g. ["mounts", "0", "prefix"].
	Path []string

	// Message is the human-readable error message.
	Message string

	// Position is the source position if available.
	Position token.Pos
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", strings.Join(i.Path, "."), i.Message)
}

// extractIssues flattens a CUE error into one Issue per failure.
func extractIssues(err error) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()

		var pos token.Pos
		if positions := e.InputPositions(); len(positions) > 0 {
			pos = positions[0]
		}

		issues = append(issues, Issue{
			Path:     e.Path(),
			Message:  fmt.Sprintf(format, args...),
			Position: pos,
		})
	}
	return issues
}

func wrapf(err error, format string, args ...interface{}) errors.PlatformError {
	return errors.Wrapf(err, errors.CodeInvalidConfig, format, args...)
}
