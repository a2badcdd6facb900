package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avelys/disktop/history"
	"github.com/avelys/disktop/model"
)

// SeriesQuerier is the read side of the history store. Lookup must be safe
// to call with an unknown key and report absence, not an error.
type SeriesQuerier interface {
	Lookup(kind history.SeriesKind, view history.View) ([]uint64, bool)
}

// ProcessResolver maps a PID to its identity for attribution labels.
type ProcessResolver interface {
	Resolve(pid int32) (model.ProcessInfo, bool)
}

const selectorTitle = "File Systems [(a)ctivity/usage]"

// selectorEntry is one line of the filesystem selector.
type selectorEntry struct {
	Label    string
	Alert    bool
	Selected bool
}

// selectorEntries builds one entry per disk. The marker glyph lands on the
// selected index only; alert styling depends solely on free space. An
// out-of-range index simply marks nothing.
func selectorEntries(disks []model.DiskDevice, selected int) []selectorEntry {
	entries := make([]selectorEntry, 0, len(disks))
	for i, d := range disks {
		marker := " "
		if i == selected {
			marker = "→"
		}
		entries = append(entries, selectorEntry{
			Label:    fmt.Sprintf("%s%3.0f%%: %s", marker, d.PercentFree(), d.MountPoint),
			Alert:    d.PercentFree() < 10.0,
			Selected: i == selected,
		})
	}
	return entries
}

// visibleEntries clips the selector to maxRows lines, scrolling the window
// so the selected entry stays visible. The border row budget is fixed, so
// extra entries scroll out rather than growing the panel past its height.
func visibleEntries(entries []selectorEntry, selected, maxRows int) []selectorEntry {
	if maxRows < 1 {
		maxRows = 1
	}
	if len(entries) <= maxRows {
		return entries
	}
	start := 0
	if selected >= maxRows {
		start = selected - maxRows + 1
	}
	if start > len(entries)-maxRows {
		start = len(entries) - maxRows
	}
	return entries[start : start+maxRows]
}

// layoutWidths splits the panel width into selector and detail columns.
// The detail width doubles as the view window width the app requests.
func layoutWidths(width int) (selectorW, detailW int) {
	selectorW = width * 35 / 100
	if selectorW < 24 {
		selectorW = 24
	}
	if selectorW > width/2 {
		selectorW = width / 2
	}
	detailW = width - selectorW - 3
	if detailW < 10 {
		detailW = 10
	}
	return selectorW, detailW
}

// RenderDiskPanel composes one frame of the disk panel: the filesystem
// selector on the left and, on the right, either the activity strips or the
// usage detail for the selected filesystem, stacked in two equal halves.
// Pure function of its inputs; nothing is retained between frames.
func RenderDiskPanel(snap *model.Snapshot, series SeriesQuerier, procs ProcessResolver,
	mode model.DisplayMode, selected int, view history.View,
	width, height int, border lipgloss.Style) string {

	selectorW, detailW := layoutWidths(width)
	innerH := height - 2 // selector border rows
	if innerH < 2 {
		innerH = 2
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, titleStyle.Render(truncate(selectorTitle, selectorW-2)))
	for _, e := range visibleEntries(selectorEntries(snap.Disks, selected), selected, innerH-1) {
		st := healthyStyle
		if e.Alert {
			st = alertStyle
		}
		lines = append(lines, st.Render(truncate(e.Label, selectorW-2)))
	}
	selector := border.Width(selectorW).Height(innerH).Render(strings.Join(lines, "\n"))

	halfH := innerH / 2
	var top, bottom string
	switch mode {
	case model.ModeActivity:
		top, bottom = renderActivity(snap, series, procs, view, detailW, halfH)
	case model.ModeUsage:
		top, bottom = renderUsage(snap.Disks, selected, series, view, detailW, halfH)
	}

	detail := padBlock(top, halfH) + "\n" + padBlock(bottom, halfH)
	return joinColumns(selector, detail, selectorW+2)
}

// padBlock pads a text block to exactly h lines so the two detail halves
// keep their 50/50 split even when one renders nothing.
func padBlock(block string, h int) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	if block == "" {
		lines = nil
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}
