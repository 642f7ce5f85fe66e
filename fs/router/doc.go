// Package router implements the virtual filesystem router.
//
// A Router presents the generic file API from package core and dispatches
// each call to one of several backend filesystems. The backend is chosen by
// the schema prefix of the path: "system:/etc/app.yaml" belongs to whatever
// backend is registered under "system". Relative names are joined against the
// router's working directory first.
//
// Backends are reached only through the wire contract. The router resolves
// paths, encodes them into the fixed size wire format, translates backend
// error codes into the generic taxonomy of package errors and keeps a cursor
// for every open file.
//
// # Setup
//
// A Router is built around an explicitly constructed Registry:
//
//	reg := router.NewRegistry()
//	if err := reg.Register("system", backend); err != nil {
//	    return err
//	}
//	r := router.New(reg, router.WithLogger(logger))
//
// Init performs the usual start-up: it opens partition 0 of disk 0 through a
// wire.Service and registers it as "system".
//
// # Concurrency
//
// The registry lock is held only for map access, never across a backend call.
// Each File serializes its own reads, writes and seeks; separate files proceed
// independently even on the same backend. Nothing is retried.
package router
