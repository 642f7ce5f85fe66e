package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	tests := []struct {
		code string
		want wire.ErrorCode
	}{
		{"NoSuchKey", wire.ErrorCodeFileNotFound},
		{"NoSuchBucket", wire.ErrorCodePartitionNotFound},
		{"AccessDenied", wire.ErrorCodeAccessDenied},
		{"InvalidRange", wire.ErrorCodeOutOfRange},
		{"EntityTooLarge", wire.ErrorCodeNoSpaceLeft},
		{"XMinioStorageFull", wire.ErrorCodeNoSpaceLeft},
		{"KeyTooLongError", wire.ErrorCodeInvalidInput},
		{"XMinioInvalidObjectName", wire.ErrorCodeInvalidInput},
		{"SlowDown", wire.ErrorCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(minio.ErrorResponse{Code: tt.code}))
		})
	}

	assert.Equal(t, wire.ErrorCodeUnknown, Code(errors.New("connection reset")))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, Translate("read", "/a", nil))

	t.Run("wraps error responses", func(t *testing.T) {
		cause := minio.ErrorResponse{Code: "NoSuchKey"}
		err := Translate("read", "/a", cause)

		var wireErr *wire.Error
		require.ErrorAs(t, err, &wireErr)
		assert.Equal(t, wire.ErrorCodeFileNotFound, wireErr.Code)
		assert.Equal(t, "read", wireErr.Op)
		assert.Equal(t, "/a", wireErr.Path)
		assert.Equal(t, cause, wireErr.Err)
	})

	t.Run("passes wire errors through", func(t *testing.T) {
		orig := wire.NewError(wire.ErrorCodeInUse, "delete", "/d")
		err := Translate("rename", "/x", fmt.Errorf("step: %w", orig))

		var got *wire.Error
		require.ErrorAs(t, err, &got)
		assert.Same(t, orig, got)
	})

	t.Run("passes context errors through", func(t *testing.T) {
		assert.ErrorIs(t, Translate("read", "/a", context.Canceled), context.Canceled)
		assert.Equal(t, context.DeadlineExceeded, Translate("read", "/a", context.DeadlineExceeded))
	})
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.True(t, IsInvalidRange(minio.ErrorResponse{Code: "InvalidRange"}))
	assert.False(t, IsInvalidRange(errors.New("boom")))
}
