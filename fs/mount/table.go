package mount

import (
	"context"

	"github.com/jmgilman/go/vfs/config"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// Compile-time interface check.
var _ wire.Service = (*Table)(nil)

// Partition is one mounted backend.
type Partition struct {
	Prefix  string
	Type    config.BackendType
	Backend wire.FileSystem
}

// Table serves a fixed list of partitions on disk 0.
type Table struct {
	partitions []Partition
}

// NewTable returns a table over partitions. Partition i is opened as
// (0, i).
func NewTable(partitions ...Partition) *Table {
	return &Table{partitions: append([]Partition(nil), partitions...)}
}

// OpenDiskPartition returns the backend of a partition.
func (t *Table) OpenDiskPartition(ctx context.Context, disk, partition uint32) (wire.FileSystem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if disk != 0 {
		return nil, wire.NewError(wire.ErrorCodeDiskNotFound, "open_partition", "")
	}
	if int(partition) >= len(t.partitions) {
		return nil, wire.NewError(wire.ErrorCodePartitionNotFound, "open_partition", "")
	}
	return t.partitions[partition].Backend, nil
}

// Partitions returns the partitions in disk order.
func (t *Table) Partitions() []Partition {
	return append([]Partition(nil), t.partitions...)
}
