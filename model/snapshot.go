package model

import "time"

// Snapshot holds a point-in-time view of disk state. It is built once per
// collection tick and never mutated afterwards; renderers only read it.
type Snapshot struct {
	Timestamp time.Time
	Disks     []DiskDevice

	// Aggregate throughput across all devices, bytes/sec.
	ReadBps  uint64
	WriteBps uint64

	// PIDs of the processes responsible for the most read/write traffic
	// during the last interval. 0 means no attribution available.
	TopReaderPID int32
	TopWriterPID int32
}

// DisplayMode selects which detail renderer the disk panel runs.
type DisplayMode int

const (
	ModeActivity DisplayMode = iota
	ModeUsage
)

func (m DisplayMode) String() string {
	if m == ModeUsage {
		return "usage"
	}
	return "activity"
}

// Toggle flips between the two modes.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeActivity {
		return ModeUsage
	}
	return ModeActivity
}
