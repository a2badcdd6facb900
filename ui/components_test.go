package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var plain = lipgloss.NewStyle()

func TestIntensityStripFullAndEmptyColumns(t *testing.T) {
	out := intensityStrip([]uint64{0, 100}, 10, 1, 100, plain)
	if !strings.Contains(out, "█") {
		t.Errorf("max-value column should render a full block: %q", out)
	}
	if strings.HasSuffix(out, "██") {
		t.Errorf("zero column should stay empty: %q", out)
	}
}

func TestIntensityStripClipsToWidth(t *testing.T) {
	data := make([]uint64, 50)
	for i := range data {
		data[i] = uint64(i)
	}
	out := intensityStrip(data, 10, 1, 49, plain)
	if w := lipgloss.Width(out); w > 10 {
		t.Errorf("strip width = %d, want <= 10", w)
	}
}

func TestIntensityStripZeroMaxDoesNotPanic(t *testing.T) {
	intensityStrip([]uint64{1, 2, 3}, 10, 2, 0, plain)
}

func TestTitledStripShortHeightKeepsTitleOnly(t *testing.T) {
	s := stripModel{Title: "T", Data: []uint64{1}, Max: 1}
	if got := titledStrip(s, 20, 1, plain); got != "T" {
		t.Errorf("height 1 should render the title only, got %q", got)
	}
}

func TestJoinColumnsAlignment(t *testing.T) {
	got := joinColumns("a\nbb", "X\nY\nZ", 4)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("joined lines = %d, want 3", len(lines))
	}
	if lines[0] != "a    X" || lines[1] != "bb   Y" || lines[2] != "     Z" {
		t.Errorf("joined block misaligned:\n%s", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("hello world", 8); got != "hello..." {
		t.Errorf("padRight truncation = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("hi", 8); got != "hi" {
		t.Errorf("truncate should leave short strings alone, got %q", got)
	}
}
