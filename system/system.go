package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/priyxstudio/entries/internal/ufs"
	"github.com/priyxstudio/entries/upath"
)

// Version is overwritten at build time with -ldflags.
var Version = "develop"

type Information struct {
	Version string  `json:"version"`
	System  System  `json:"system"`
	Listing Listing `json:"listing"`
}

type System struct {
	Architecture  string `json:"architecture"`
	KernelVersion string `json:"kernel_version"`
	OS            string `json:"os"`
	OSType        string `json:"os_type"`
}

// Listing describes how directory listings are produced on this host.
type Listing struct {
	Backend          string `json:"backend"`
	FilenameEncoding string `json:"filename_encoding"`
}

// Filesystem is the mounted filesystem a path lives on. Entry order is decided
// by the filesystem, so it is reported alongside listings in debug output.
type Filesystem struct {
	Device     string `json:"device"`
	Mountpoint string `json:"mountpoint"`
	Type       string `json:"type"`
}

func GetSystemInformation() (*Information, error) {
	kernelVersion, err := getKernelVersion()
	if err != nil {
		return nil, err
	}

	osName, err := getOperatingSystemName()
	if err != nil {
		return nil, err
	}

	return &Information{
		Version: Version,
		System: System{
			Architecture:  runtime.GOARCH,
			KernelVersion: kernelVersion,
			OS:            osName,
			OSType:        runtime.GOOS,
		},
		Listing: Listing{
			Backend:          ufs.Backend,
			FilenameEncoding: upath.FilenameEncoding(),
		},
	}, nil
}

// FilesystemFor returns the filesystem that holds path. A zero Filesystem and
// a nil error are returned when no mounted partition matches.
func FilesystemFor(path string) (Filesystem, error) {
	partitions, err := disk.Partitions(true)
	if err != nil {
		return Filesystem{}, err
	}

	part, err := getDiskForPath(path, partitions)
	if err != nil || part == nil {
		return Filesystem{}, err
	}
	return Filesystem{
		Device:     part.Device,
		Mountpoint: part.Mountpoint,
		Type:       part.Fstype,
	}, nil
}
