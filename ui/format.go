package ui

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// fmtBytes renders a byte count in human-readable binary units.
func fmtBytes(b uint64) string {
	return humanize.IBytes(b)
}

// fmtRate renders a byte magnitude centered to the fixed column width used
// in strip titles, so titles stay aligned as values jump between units.
func fmtRate(b uint64) string {
	return center(fmtBytes(b), 10)
}

// center pads s with spaces on both sides to width w.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}
