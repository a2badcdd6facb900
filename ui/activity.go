package ui

import (
	"fmt"

	"github.com/avelys/disktop/history"
	"github.com/avelys/disktop/model"
)

// activityStrips assembles the read and write strip models for the current
// view window. If either series has no window yet, it reports absent and
// nothing gets drawn: a partial frame is worse than none.
func activityStrips(snap *model.Snapshot, series SeriesQuerier, procs ProcessResolver,
	view history.View) (read, write stripModel, ok bool) {

	readData, ok := series.Lookup(history.IORead(), view)
	if !ok {
		return stripModel{}, stripModel{}, false
	}
	writeData, ok := series.Lookup(history.IOWrite(), view)
	if !ok {
		return stripModel{}, stripModel{}, false
	}

	readMax := maxSample(readData)
	writeMax := maxSample(writeData)

	read = stripModel{
		Title: fmt.Sprintf("R [%s/s] Max [%s/s] %s",
			fmtRate(snap.ReadBps), fmtRate(readMax),
			attributionLabel(snap.TopReaderPID, procs)),
		Data: readData,
		Max:  readMax,
	}
	write = stripModel{
		Title: fmt.Sprintf("W [%s/s] Max [%s/s] %s",
			fmtRate(snap.WriteBps), fmtRate(writeMax),
			attributionLabel(snap.TopWriterPID, procs)),
		Data: writeData,
		Max:  writeMax,
	}
	return read, write, true
}

// attributionLabel resolves a PID to "[pid - name - user]". A PID that no
// longer resolves (process exited) yields an empty label, not an error.
func attributionLabel(pid int32, procs ProcessResolver) string {
	p, ok := procs.Resolve(pid)
	if !ok {
		return ""
	}
	return fmt.Sprintf("[%d - %s - %s]", p.PID, p.Name, p.User)
}

// renderActivity draws the two throughput strips, each self-scaled to its
// own windowed maximum so both stay legible regardless of absolute volume.
func renderActivity(snap *model.Snapshot, series SeriesQuerier, procs ProcessResolver,
	view history.View, width, height int) (top, bottom string) {

	read, write, ok := activityStrips(snap, series, procs, view)
	if !ok {
		return "", ""
	}
	return titledStrip(read, width, height, readStyle),
		titledStrip(write, width, height, writeStyle)
}
