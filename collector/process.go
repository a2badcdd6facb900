package collector

import (
	"sync"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/avelys/disktop/model"
	"github.com/avelys/disktop/util"
)

// ioSample holds one process's cumulative IO counters.
type ioSample struct {
	readBytes  uint64
	writeBytes uint64
}

// ProcessCollector attributes disk traffic to processes. Each tick it diffs
// per-PID IO counters against the previous tick, marks the heaviest reader
// and writer on the snapshot, and refreshes the PID lookup table used for
// strip labels.
type ProcessCollector struct {
	mu    sync.RWMutex
	prev  map[int32]ioSample
	table map[int32]model.ProcessInfo
}

func NewProcessCollector() *ProcessCollector {
	return &ProcessCollector{
		prev:  make(map[int32]ioSample),
		table: make(map[int32]model.ProcessInfo),
	}
}

func (c *ProcessCollector) Name() string { return "process" }

func (c *ProcessCollector) Collect(snap *model.Snapshot) error {
	procs, err := process.Processes()
	if err != nil {
		return err
	}

	curr := make(map[int32]ioSample, len(procs))
	table := make(map[int32]model.ProcessInfo, len(procs))
	deltas := make(map[int32]ioSample)

	for _, p := range procs {
		counters, err := p.IOCounters()
		if err != nil {
			continue // exited, or not ours to read
		}
		curr[p.Pid] = ioSample{readBytes: counters.ReadBytes, writeBytes: counters.WriteBytes}

		name, _ := p.Name()
		user, _ := p.Username()
		table[p.Pid] = model.ProcessInfo{PID: p.Pid, Name: name, User: user}

		if prev, ok := c.prev[p.Pid]; ok {
			deltas[p.Pid] = ioSample{
				readBytes:  util.Delta(prev.readBytes, counters.ReadBytes),
				writeBytes: util.Delta(prev.writeBytes, counters.WriteBytes),
			}
		}
	}

	snap.TopReaderPID, snap.TopWriterPID = topConsumers(deltas)

	c.mu.Lock()
	c.prev = curr
	c.table = table
	c.mu.Unlock()
	return nil
}

// topConsumers picks the PIDs with the largest read and write deltas.
// Returns 0 for a direction with no traffic at all.
func topConsumers(deltas map[int32]ioSample) (reader, writer int32) {
	var maxRead, maxWrite uint64
	for pid, d := range deltas {
		if d.readBytes > maxRead {
			maxRead = d.readBytes
			reader = pid
		}
		if d.writeBytes > maxWrite {
			maxWrite = d.writeBytes
			writer = pid
		}
	}
	return reader, writer
}

// Resolve looks up a PID in the last-collected process table. PID 0 means
// "no attribution" and always resolves to absent.
func (c *ProcessCollector) Resolve(pid int32) (model.ProcessInfo, bool) {
	if pid == 0 {
		return model.ProcessInfo{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.table[pid]
	return info, ok
}
