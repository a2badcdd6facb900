package engine

import (
	"sync"
	"time"

	"github.com/avelys/disktop/collector"
	"github.com/avelys/disktop/history"
	"github.com/avelys/disktop/model"
)

// Engine orchestrates collection and history retention.
type Engine struct {
	registry *collector.Registry
	procs    *collector.ProcessCollector

	// History retains the strip series the renderers query.
	History *history.Store

	tickMu sync.Mutex // serializes Tick() when ticks overlap
}

// NewEngine creates an engine with all collectors registered and a history
// store retaining historySize samples per series.
func NewEngine(historySize int) *Engine {
	reg := collector.NewRegistry()
	procs := collector.NewProcessCollector()
	reg.Add(&collector.UsageCollector{})
	reg.Add(&collector.IOCollector{})
	reg.Add(procs)

	return &Engine{
		registry: reg,
		procs:    procs,
		History:  history.NewStore(historySize),
	}
}

// Processes exposes the PID lookup table for attribution labels.
func (e *Engine) Processes() *collector.ProcessCollector {
	return e.procs
}

// Tick performs one collection cycle: build a fresh snapshot, then push the
// derived rates and per-device used-space into the history store. Collector
// errors are non-fatal; the snapshot keeps whatever was collected.
func (e *Engine) Tick() *model.Snapshot {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	snap := &model.Snapshot{Timestamp: time.Now()}
	e.registry.CollectAll(snap)

	e.History.Push(history.IORead(), snap.ReadBps)
	e.History.Push(history.IOWrite(), snap.WriteBps)
	keep := make(map[string]bool, len(snap.Disks))
	for _, d := range snap.Disks {
		e.History.Push(history.FSUsed(d.Name), d.UsedBytes())
		keep[d.Name] = true
	}
	e.History.PruneFSUsed(keep)
	return snap
}
