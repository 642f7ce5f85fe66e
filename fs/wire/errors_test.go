package wire_test

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("disk offline")

	tests := []struct {
		name string
		err  *wire.Error
		want string
	}{
		{
			name: "code only",
			err:  &wire.Error{Code: wire.ErrorCodeInUse},
			want: "InUse",
		},
		{
			name: "op and path",
			err:  wire.NewError(wire.ErrorCodeFileNotFound, "open", "/a.txt"),
			want: "open: FileNotFound (/a.txt)",
		},
		{
			name: "with cause",
			err:  &wire.Error{Code: wire.ErrorCodeReadFailed, Op: "read", Err: cause},
			want: "read: ReadFailed: disk offline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &wire.Error{Code: wire.ErrorCodeWriteFailed, Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "DiskNotFound", wire.ErrorCodeDiskNotFound.String())
	assert.Equal(t, "ErrorCode(99)", wire.ErrorCode(99).String())
}

func TestErrorCode_IsNotFound(t *testing.T) {
	assert.True(t, wire.ErrorCodePathNotFound.IsNotFound())
	assert.True(t, wire.ErrorCodeFileNotFound.IsNotFound())
	assert.True(t, wire.ErrorCodeDirectoryNotFound.IsNotFound())
	assert.False(t, wire.ErrorCodeDiskNotFound.IsNotFound())
}
