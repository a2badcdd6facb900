package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stripModel is everything an intensity strip needs: a title line, the
// sample window, and the scale ceiling.
type stripModel struct {
	Title string
	Data  []uint64
	Max   uint64
}

// subBlocks gives sub-cell resolution for partial fills within a row.
var subBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// maxSample returns the largest sample, floored at 1 so a strip scale never
// divides by zero.
func maxSample(data []uint64) uint64 {
	max := uint64(0)
	for _, v := range data {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

// intensityStrip renders data as width columns of height rows, each column
// scaled against max. Data beyond width is clipped to the newest samples.
func intensityStrip(data []uint64, width, height int, max uint64, style lipgloss.Style) string {
	if height < 1 {
		height = 1
	}
	if max == 0 {
		max = 1
	}
	if width > 0 && len(data) > width {
		data = data[len(data)-width:]
	}

	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		var line strings.Builder
		for _, v := range data {
			normalized := float64(v) / float64(max) * float64(height)
			cellBottom := float64(row)
			cellTop := float64(row + 1)

			var ch rune
			switch {
			case normalized >= cellTop:
				ch = '█'
			case normalized <= cellBottom:
				ch = ' '
			default:
				idx := int((normalized - cellBottom) * 8)
				if idx >= len(subBlocks) {
					idx = len(subBlocks) - 1
				}
				if idx < 0 {
					idx = 0
				}
				ch = subBlocks[idx]
			}
			line.WriteRune(ch)
		}
		sb.WriteString(style.Render(strings.TrimRight(line.String(), " ")))
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// titledStrip renders a strip with its title line on top, filling height
// lines in total.
func titledStrip(s stripModel, width, height int, style lipgloss.Style) string {
	title := truncate(s.Title, width)
	if height < 2 {
		return title
	}
	return title + "\n" + intensityStrip(s.Data, width, height-1, s.Max, style)
}

// joinColumns joins two text blocks side-by-side, the left one padded to
// leftW visual columns.
func joinColumns(left, right string, leftW int) string {
	leftLines := strings.Split(strings.TrimRight(left, "\n"), "\n")
	rightLines := strings.Split(strings.TrimRight(right, "\n"), "\n")

	maxLines := len(leftLines)
	if len(rightLines) > maxLines {
		maxLines = len(rightLines)
	}

	var sb strings.Builder
	for i := 0; i < maxLines; i++ {
		l, r := "", ""
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		pad := leftW - lipgloss.Width(l)
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(l)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(" ")
		sb.WriteString(r)
		if i < maxLines-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// padRight pads s to width, truncating with ellipsis when too long.
func padRight(s string, width int) string {
	if len(s) >= width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// truncate shortens s to maxLen runes with ellipsis if needed.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
