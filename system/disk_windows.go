//go:build windows

package system

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// getDiskForPath matches the drive letter of path against the partition
// mountpoints, which are reported as "C:" or "C:\".
func getDiskForPath(path string, partitions []disk.PartitionStat) (*disk.PartitionStat, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	volumeName := filepath.VolumeName(absPath)
	if volumeName == "" {
		return nil, nil
	}

	for i, part := range partitions {
		if strings.EqualFold(strings.TrimRight(part.Mountpoint, `\`), volumeName) {
			return &partitions[i], nil
		}
	}
	return nil, nil
}
