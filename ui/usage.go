package ui

import (
	"fmt"
	"strings"

	"github.com/avelys/disktop/history"
	"github.com/avelys/disktop/model"
)

// usageStrip resolves the selected filesystem and its used-space history.
// Out-of-range selection or an untracked series reports absent; the caller
// draws nothing for this frame.
func usageStrip(disks []model.DiskDevice, selected int, series SeriesQuerier,
	view history.View) (stripModel, model.DiskDevice, bool) {

	if selected < 0 || selected >= len(disks) {
		return stripModel{}, model.DiskDevice{}, false
	}
	fs := disks[selected]
	data, ok := series.Lookup(history.FSUsed(fs.Name), view)
	if !ok {
		return stripModel{}, model.DiskDevice{}, false
	}

	// Scale against total capacity, not the windowed max: the strip is
	// about absolute headroom, not relative fluctuation.
	max := fs.SizeBytes
	if max == 0 {
		max = 1
	}
	strip := stripModel{
		Title: fmt.Sprintf("%s  ↓Used [%s (%.1f%%)] Free [%s (%.1f%%)] Size [%s]",
			fs.Name,
			center(fmtBytes(fs.UsedBytes()), 10), fs.PercentUsed(),
			center(fmtBytes(fs.AvailableBytes), 10), fs.PercentFree(),
			center(fmtBytes(fs.SizeBytes), 10)),
		Data: data,
		Max:  max,
	}
	return strip, fs, true
}

// renderUsage draws the used-space history strip and the two-column static
// detail readout for the selected filesystem.
func renderUsage(disks []model.DiskDevice, selected int, series SeriesQuerier,
	view history.View, width, height int) (top, bottom string) {

	strip, fs, ok := usageStrip(disks, selected, series, view)
	if !ok {
		return "", ""
	}

	top = titledStrip(strip, width, height, readStyle)

	left := strings.Join([]string{
		labelStyle.Render(padRight("Name:", 14)) + valueStyle.Render(fs.Name),
		labelStyle.Render(padRight("File System:", 14)) + valueStyle.Render(fs.FileSystem),
		labelStyle.Render(padRight("Mount Point:", 14)) + valueStyle.Render(fs.MountPoint),
	}, "\n")
	right := strings.Join([]string{
		labelStyle.Render(padRight("Size:", 14)) + valueStyle.Render(fmtBytes(fs.SizeBytes)),
		labelStyle.Render(padRight("Used:", 14)) + valueStyle.Render(fmtBytes(fs.UsedBytes())),
		labelStyle.Render(padRight("Free:", 14)) + valueStyle.Render(fmtBytes(fs.AvailableBytes)),
	}, "\n")
	bottom = joinColumns(left, right, width/2)
	return top, bottom
}
