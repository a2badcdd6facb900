package collector

import (
	"time"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/avelys/disktop/model"
	"github.com/avelys/disktop/util"
)

// IOCollector derives aggregate read/write byte rates from the cumulative
// per-device counters. The first tick only seeds the counters.
type IOCollector struct {
	prevRead  uint64
	prevWrite uint64
	prevAt    time.Time
}

func (c *IOCollector) Name() string { return "io" }

func (c *IOCollector) Collect(snap *model.Snapshot) error {
	counters, err := disk.IOCounters()
	if err != nil {
		return err
	}

	var read, write uint64
	for _, ctr := range counters {
		read += ctr.ReadBytes
		write += ctr.WriteBytes
	}

	if !c.prevAt.IsZero() {
		dt := snap.Timestamp.Sub(c.prevAt)
		snap.ReadBps = uint64(util.Rate(c.prevRead, read, dt))
		snap.WriteBps = uint64(util.Rate(c.prevWrite, write, dt))
	}

	c.prevRead = read
	c.prevWrite = write
	c.prevAt = snap.Timestamp
	return nil
}
