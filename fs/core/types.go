package core

// The types below describe capabilities no backend provides yet. Each is an
// interface with an unexported method and no implementation, so the only
// value a caller can ever hold is nil.

// FileAttr describes the attributes of a file.
type FileAttr interface {
	fileAttr()
}

// Permissions describes the permission bits of a file.
type Permissions interface {
	permissions()
}

// DirEntry is one entry produced by a ReadDir iterator.
type DirEntry interface {
	dirEntry()
}

// ReadDir iterates the entries of a directory.
type ReadDir interface {
	dirIterator()
}

// FileType classifies a directory entry.
type FileType int

const (
	// FileTypeUnknown is an entry of unrecognized kind.
	FileTypeUnknown FileType = iota
	// FileTypeRegular is a regular file.
	FileTypeRegular
	// FileTypeDirectory is a directory.
	FileTypeDirectory
	// FileTypeSymlink is a symbolic link. No backend produces it.
	FileTypeSymlink
)

func (t FileType) String() string {
	switch t {
	case FileTypeRegular:
		return "file"
	case FileTypeDirectory:
		return "dir"
	case FileTypeSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// IsDir reports whether t is a directory.
func (t FileType) IsDir() bool { return t == FileTypeDirectory }

// IsFile reports whether t is a regular file.
func (t FileType) IsFile() bool { return t == FileTypeRegular }

// IsSymlink reports whether t is a symbolic link.
func (t FileType) IsSymlink() bool { return t == FileTypeSymlink }
