// Package core provides the generic file API exposed by the virtual
// filesystem router.
//
// Callers write against the interfaces in this package and never see which
// backend owns a path. Paths are either absolute, with a schema prefix that
// selects a backend ("system:/etc/config.yaml"), or relative to the router's
// working directory.
//
// # Interface Hierarchy
//
// The FS interface is composed of four sub-interfaces:
//
//   - FileFS: opening and copying files (Open, Copy)
//   - ManageFS: removing and renaming entries (Unlink, Rmdir, Rename, RemoveAll, Mkdir)
//   - MetadataFS: attributes and permissions (Stat, Lstat, SetPermissions, ReadDir)
//   - LinkFS: links and canonical paths (Symlink, Link, Readlink, Canonicalize)
//
// Several of these operations have no backend support today and always fail
// with an error matching ErrUnsupported. The attribute, permission and
// directory entry types are declared so the API surface is complete but no
// value of them can be constructed outside this package.
//
// # Opening Files
//
//	opts := core.NewOpenOptions().Read(true).Write(true).Create(true)
//	f, err := filesystem.Open(ctx, "system:/notes.txt", opts)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
// # Errors
//
// Errors returned by implementations match the io/fs sentinels re-exported
// here, so callers can use errors.Is without importing the errors package:
//
//	if errors.Is(err, core.ErrNotExist) {
//	    // handle missing file
//	}
package core
