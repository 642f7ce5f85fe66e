package wire

import (
	"bytes"
	"fmt"
	"strings"
)

// PathCapacity is the number of bytes available in a Path buffer.
const PathCapacity = 0x300

// Path is the wire encoding of a filesystem path: UTF-8 bytes left-justified
// and zero padded to PathCapacity.
type Path [PathCapacity]byte

// EncodePath copies p into a zeroed Path buffer.
// Paths longer than PathCapacity are rejected with ErrorCodePathTooLong
// instead of being truncated. Paths containing a zero byte are rejected with
// ErrorCodeInvalidInput since the zero byte terminates the encoding.
func EncodePath(p string) (Path, error) {
	var buf Path
	if i := strings.IndexByte(p, 0); i >= 0 {
		return buf, &Error{
			Code: ErrorCodeInvalidInput,
			Op:   "encode",
			Path: p,
			Err:  fmt.Errorf("path contains a zero byte at offset %d", i),
		}
	}
	if len(p) > PathCapacity {
		return buf, &Error{
			Code: ErrorCodePathTooLong,
			Op:   "encode",
			Path: p,
			Err:  fmt.Errorf("path is %d bytes, capacity is %d", len(p), PathCapacity),
		}
	}
	copy(buf[:], p)
	return buf, nil
}

// MustEncodePath is like EncodePath but panics on invalid input.
// It is intended for tests and constant paths.
func MustEncodePath(p string) Path {
	buf, err := EncodePath(p)
	if err != nil {
		panic(err)
	}
	return buf
}

// Len returns the number of bytes before the first zero byte.
func (p *Path) Len() int {
	if i := bytes.IndexByte(p[:], 0); i >= 0 {
		return i
	}
	return PathCapacity
}

// String decodes the path up to the first zero byte.
func (p Path) String() string {
	return string(p[:p.Len()])
}
