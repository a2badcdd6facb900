package model

// DiskDevice describes one mounted filesystem as seen at collection time.
// The collector guarantees AvailableBytes <= SizeBytes and SizeBytes > 0.
type DiskDevice struct {
	Name           string
	MountPoint     string
	FileSystem     string
	SizeBytes      uint64
	AvailableBytes uint64
}

// UsedBytes returns the occupied portion of the filesystem.
func (d DiskDevice) UsedBytes() uint64 {
	return d.SizeBytes - d.AvailableBytes
}

// PercentFree returns the free share as 0-100.
func (d DiskDevice) PercentFree() float64 {
	if d.SizeBytes == 0 {
		return 0
	}
	return float64(d.AvailableBytes) / float64(d.SizeBytes) * 100
}

// PercentUsed returns the used share as 0-100.
func (d DiskDevice) PercentUsed() float64 {
	return 100 - d.PercentFree()
}

// ProcessInfo identifies a process for attribution labels.
type ProcessInfo struct {
	PID  int32
	Name string
	User string
}
