package router

import (
	"log/slog"
)

// DefaultWorkingDir is the directory relative names are joined against when
// no working directory provider is configured.
const DefaultWorkingDir = SystemPrefix + ":/"

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for debug tracing of backend calls.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithWorkingDir sets the provider consulted for the working directory each
// time a relative name is resolved. It must return an absolute path.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(r *Router) {
		if getwd != nil {
			r.getwd = getwd
		}
	}
}

// WithFixedWorkingDir is WithWorkingDir for a constant directory.
func WithFixedWorkingDir(dir string) Option {
	return WithWorkingDir(func() (string, error) { return dir, nil })
}

func defaultWorkingDir() (string, error) {
	return DefaultWorkingDir, nil
}
