//go:build !linux && !windows

package system

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// getDiskForPath picks the partition with the longest mountpoint that is a
// prefix of path.
func getDiskForPath(path string, partitions []disk.PartitionStat) (*disk.PartitionStat, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	var match *disk.PartitionStat
	for i, part := range partitions {
		mp := part.Mountpoint
		if mp != "/" && absPath != mp && !strings.HasPrefix(absPath, mp+"/") {
			continue
		}
		if match == nil || len(mp) > len(match.Mountpoint) {
			match = &partitions[i]
		}
	}
	return match, nil
}
