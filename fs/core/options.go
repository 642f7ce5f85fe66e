package core

import "strings"

// OpenOptions configures how a file is opened.
//
// The zero value opens nothing; enable at least read or write. Setters return
// the receiver so calls can be chained:
//
//	opts := core.NewOpenOptions().Write(true).Create(true).Truncate(true)
type OpenOptions struct {
	read      bool
	write     bool
	append    bool
	truncate  bool
	create    bool
	createNew bool
}

// NewOpenOptions returns an empty set of options.
func NewOpenOptions() *OpenOptions {
	return &OpenOptions{}
}

// ReadOnly returns options that open an existing file for reading.
func ReadOnly() *OpenOptions {
	return NewOpenOptions().Read(true)
}

// Read sets whether the file may be read.
func (o *OpenOptions) Read(read bool) *OpenOptions {
	o.read = read
	return o
}

// Write sets whether the file may be written.
func (o *OpenOptions) Write(write bool) *OpenOptions {
	o.write = write
	return o
}

// Append sets whether writes may grow the file past its current size.
func (o *OpenOptions) Append(appendMode bool) *OpenOptions {
	o.append = appendMode
	return o
}

// Truncate sets whether a writable file is emptied after opening.
func (o *OpenOptions) Truncate(truncate bool) *OpenOptions {
	o.truncate = truncate
	return o
}

// Create sets whether the file is created if missing.
// Calling it, with either value, also sets Append so a newly created, empty
// file can be written.
func (o *OpenOptions) Create(create bool) *OpenOptions {
	o.create = create
	o.append = true
	return o
}

// CreateNew sets whether the file must not already exist.
// Like Create, calling it always sets Append.
func (o *OpenOptions) CreateNew(createNew bool) *OpenOptions {
	o.createNew = createNew
	o.append = true
	return o
}

// Readable reports whether the read option is set.
func (o *OpenOptions) Readable() bool { return o.read }

// Writable reports whether the write option is set.
func (o *OpenOptions) Writable() bool { return o.write }

// Appends reports whether the append option is set.
func (o *OpenOptions) Appends() bool { return o.append }

// Truncates reports whether the truncate option is set.
func (o *OpenOptions) Truncates() bool { return o.truncate }

// Creates reports whether the create option is set.
func (o *OpenOptions) Creates() bool { return o.create }

// CreatesNew reports whether the create-new option is set.
func (o *OpenOptions) CreatesNew() bool { return o.createNew }

func (o *OpenOptions) String() string {
	var flags []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{o.read, "read"},
		{o.write, "write"},
		{o.append, "append"},
		{o.truncate, "truncate"},
		{o.create, "create"},
		{o.createNew, "create_new"},
	} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, "|")
}
