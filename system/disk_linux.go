//go:build linux

package system

import (
	"github.com/shirou/gopsutil/v3/disk"
	"golang.org/x/sys/unix"
)

// getDiskForPath finds the partition holding path by comparing filesystem ids.
// Later mounts shadow earlier ones, so the last match wins.
func getDiskForPath(path string, partitions []disk.PartitionStat) (*disk.PartitionStat, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, err
	}

	var match *disk.PartitionStat
	for i, part := range partitions {
		var pStat unix.Statfs_t
		if err := unix.Statfs(part.Mountpoint, &pStat); err != nil {
			continue
		}
		if stat.Fsid == pStat.Fsid && stat.Type == pStat.Type {
			match = &partitions[i]
		}
	}
	return match, nil
}
