package config

import (
	"testing"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	m, ok := cfg.Mount("system")
	require.True(t, ok)
	assert.Equal(t, TypeMemory, m.Type)

	_, ok = cfg.Mount("other")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	system := Mount{Prefix: "system", Type: TypeMemory}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{WorkingDir: "data:/", Mounts: []Mount{
				system,
				{Prefix: "data", Type: TypeLocal, Root: "/srv"},
				{Prefix: "s3", Type: TypeMinIO, MinIO: &MinIO{Bucket: "b"}},
			}},
		},
		{
			name:    "working directory not absolute",
			cfg:     Config{WorkingDir: "system:", Mounts: []Mount{system}},
			wantErr: true,
		},
		{
			name:    "working directory on unmounted prefix",
			cfg:     Config{WorkingDir: "other:/", Mounts: []Mount{system}},
			wantErr: true,
		},
		{
			name:    "empty prefix",
			cfg:     Config{WorkingDir: "system:/", Mounts: []Mount{system, {Type: TypeMemory}}},
			wantErr: true,
		},
		{
			name:    "prefix with slash",
			cfg:     Config{WorkingDir: "system:/", Mounts: []Mount{system, {Prefix: "a/b", Type: TypeMemory}}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cfg:     Config{WorkingDir: "system:/", Mounts: []Mount{{Prefix: "system", Type: "tape"}}},
			wantErr: true,
		},
		{
			name:    "minio without bucket",
			cfg:     Config{WorkingDir: "system:/", Mounts: []Mount{system, {Prefix: "s3", Type: TypeMinIO, MinIO: &MinIO{}}}},
			wantErr: true,
		},
		{
			name:    "no mounts",
			cfg:     Config{WorkingDir: "system:/"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := &Config{WorkingDir: "system:/", Mounts: []Mount{
		{Prefix: "system", Type: TypeMemory},
		{Prefix: "s3", Type: TypeMinIO, MinIO: &MinIO{Bucket: "b", AccessKey: "ak", SecretKey: "sk"}},
	}}

	red := cfg.Redacted()
	assert.Equal(t, "REDACTED", red.Mounts[1].MinIO.AccessKey)
	assert.Equal(t, "REDACTED", red.Mounts[1].MinIO.SecretKey)
	assert.Equal(t, "b", red.Mounts[1].MinIO.Bucket)

	// The original is untouched.
	assert.Equal(t, "sk", cfg.Mounts[1].MinIO.SecretKey)
}
