package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) LoaderOption {
	return WithLookupEnv(func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	})
}

func newLoader(t *testing.T, files map[string]string, opts ...LoaderOption) *Loader {
	t.Helper()
	mfs := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(mfs, name, []byte(content), 0o644))
	}
	return NewLoader(mfs, opts...)
}

const yamlConfig = `
workingDir: "scratch:/home"
mounts:
  - prefix: system
    type: local
    root: /srv/vfs
  - prefix: scratch
    type: memory
  - prefix: archive
    type: minio
    minio:
      endpoint: ${MINIO_ENDPOINT}
      bucket: archive
      accessKey: ${MINIO_ACCESS_KEY}
      secretKey: ${MINIO_SECRET_KEY}
      partSize: 16777216
      maxFileSize: 268435456
`

var testEnv = map[string]string{
	"MINIO_ENDPOINT":   "localhost:9000",
	"MINIO_ACCESS_KEY": "ak",
	"MINIO_SECRET_KEY": "sk",
}

func TestLoadFile_YAML(t *testing.T) {
	loader := newLoader(t, map[string]string{"vfs.yaml": yamlConfig}, env(testEnv))

	cfg, err := loader.LoadFile(context.Background(), "vfs.yaml")
	require.NoError(t, err)

	assert.Equal(t, "scratch:/home", cfg.WorkingDir)
	require.Len(t, cfg.Mounts, 3)

	assert.Equal(t, Mount{Prefix: "system", Type: TypeLocal, Root: "/srv/vfs"}, cfg.Mounts[0])
	assert.Equal(t, Mount{Prefix: "scratch", Type: TypeMemory}, cfg.Mounts[1])

	archive := cfg.Mounts[2]
	assert.Equal(t, TypeMinIO, archive.Type)
	require.NotNil(t, archive.MinIO)
	assert.Equal(t, MinIO{
		Endpoint:    "localhost:9000",
		Bucket:      "archive",
		AccessKey:   "ak",
		SecretKey:   "sk",
		PartSize:    16777216,
		MaxFileSize: 268435456,
	}, *archive.MinIO)
}

func TestLoadFile_CUEAppliesDefaults(t *testing.T) {
	loader := newLoader(t, map[string]string{"vfs.cue": `
mounts: [{prefix: "system", type: "memory"}]
`})

	cfg, err := loader.LoadFile(context.Background(), "vfs.cue")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_JSON(t *testing.T) {
	loader := newLoader(t, map[string]string{"vfs.json": `{
  "workingDir": "system:/data",
  "mounts": [{"prefix": "system", "type": "local", "root": "/tmp/vfs", "bound": true}]
}`})

	cfg, err := loader.LoadFile(context.Background(), "vfs.json")
	require.NoError(t, err)
	assert.Equal(t, "system:/data", cfg.WorkingDir)
	assert.Equal(t, []Mount{{Prefix: "system", Type: TypeLocal, Root: "/tmp/vfs", Bound: true}}, cfg.Mounts)
}

func TestLoadBytes_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		source   string
	}{
		{
			name:     "prefix with colon",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "sys:tem", type: "memory"}]`,
		},
		{
			name:     "unknown backend type",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "system", type: "ftp"}]`,
		},
		{
			name:     "local mount without root",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "system", type: "local"}]`,
		},
		{
			name:     "minio mount without settings",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "system", type: "minio"}]`,
		},
		{
			name:     "unknown field",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "system", type: "memory", colour: "red"}]`,
		},
		{
			name:     "relative working directory",
			filename: "bad.cue",
			source:   `workingDir: "home", mounts: [{prefix: "system", type: "memory"}]`,
		},
		{
			name:     "missing system mount",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "scratch", type: "memory"}]`,
		},
		{
			name:     "duplicate prefix",
			filename: "bad.cue",
			source:   `mounts: [{prefix: "system", type: "memory"}, {prefix: "system", type: "memory"}]`,
		},
		{
			name:     "syntax error",
			filename: "bad.cue",
			source:   `mounts: [`,
		},
		{
			name:     "malformed yaml",
			filename: "bad.yaml",
			source:   "mounts: [\n  - :",
		},
		{
			name:     "unsupported extension",
			filename: "vfs.toml",
			source:   `mounts = []`,
		},
		{
			name:     "undefined variable",
			filename: "bad.cue",
			source: `mounts: [{prefix: "system", type: "minio", minio: {
	endpoint: "localhost:9000", bucket: "b", accessKey: "${NOPE}", secretKey: "s"
}}]`,
		},
	}

	loader := NewLoader(memfs.New(), env(nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loader.LoadBytes(context.Background(), []byte(tt.source), tt.filename)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	loader := NewLoader(memfs.New())

	_, err := loader.LoadFile(context.Background(), "nope.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_CancelledContext(t *testing.T) {
	loader := newLoader(t, map[string]string{"vfs.yaml": yamlConfig}, env(testEnv))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.LoadFile(ctx, "vfs.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vfs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o644))

	cfg, err := Load(context.Background(), path, env(testEnv))
	require.NoError(t, err)
	assert.Len(t, cfg.Mounts, 3)
}
