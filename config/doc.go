/*
Package config loads the mount table that describes which backends a router
serves.

# Overview

A configuration names the working directory used for relative paths and the
list of mounts. Each mount binds a prefix to a backend:

	workingDir: "system:/"
	mounts: [
		{prefix: "system", type: "local", root: "/var/lib/vfs"},
		{prefix: "scratch", type: "memory"},
		{
			prefix: "archive"
			type:   "minio"
			minio: {
				endpoint:  "localhost:9000"
				bucket:    "archive"
				accessKey: "${MINIO_ACCESS_KEY}"
				secretKey: "${MINIO_SECRET_KEY}"
			}
		},
	]

Files may be written in CUE, JSON or YAML; the format is chosen by extension.
Every document is unified with an embedded CUE schema before it is decoded,
so unknown fields, malformed prefixes and unknown backend types are reported
with their source positions.

# Environment

Endpoint, root, bucket and credential fields may reference environment
variables as ${NAME}. LoadDotenv populates the environment from .env files
first:

	if err := config.LoadDotenv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(ctx, "vfs.yaml")

An undefined variable is a configuration error rather than an empty string.

# Errors

All failures carry errors.CodeInvalidConfig.
*/
package config
