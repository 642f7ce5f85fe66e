package wire

import "strings"

// OpenMode is the capability bitmask sent with an open request.
type OpenMode uint32

const (
	// ModeRead allows reads through the handle.
	ModeRead OpenMode = 1 << 0
	// ModeWrite allows writes through the handle.
	ModeWrite OpenMode = 1 << 1
	// ModeAppend allows writes to grow the file past its current size.
	ModeAppend OpenMode = 1 << 2
)

// Has reports whether every bit in flag is set.
func (m OpenMode) Has(flag OpenMode) bool {
	return m&flag == flag
}

func (m OpenMode) String() string {
	var parts []string
	if m.Has(ModeRead) {
		parts = append(parts, "read")
	}
	if m.Has(ModeWrite) {
		parts = append(parts, "write")
	}
	if m.Has(ModeAppend) {
		parts = append(parts, "append")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// EntryType is the kind of a filesystem entry.
type EntryType int

const (
	// EntryTypeFile is a regular file.
	EntryTypeFile EntryType = iota
	// EntryTypeDirectory is a directory.
	EntryTypeDirectory
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeFile:
		return "file"
	case EntryTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}
