// Package mount turns a config.Config into a running router.
//
// Backends are laid out as partitions of disk 0: the system mount is
// partition 0 and the remaining mounts follow in configuration order. The
// resulting Table implements wire.Service, so the router boots through the
// same discovery path it would use against a remote filesystem service:
//
//	cfg, err := config.Load(ctx, "vfs.yaml")
//	if err != nil {
//	    return err
//	}
//	r, table, err := mount.Boot(ctx, cfg, mount.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	for _, p := range table.Partitions() {
//	    fmt.Println(p.Prefix, p.Type)
//	}
package mount
