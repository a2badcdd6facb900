package ui

import (
	"strings"
	"testing"

	"github.com/avelys/disktop/history"
	"github.com/avelys/disktop/model"
)

func TestMaxSample(t *testing.T) {
	if got := maxSample([]uint64{10, 50, 30}); got != 50 {
		t.Errorf("maxSample = %d, want 50", got)
	}
	if got := maxSample(nil); got != 1 {
		t.Errorf("maxSample(nil) = %d, want floor of 1", got)
	}
	if got := maxSample([]uint64{0, 0, 0}); got != 1 {
		t.Errorf("maxSample(all zero) = %d, want floor of 1", got)
	}
}

func TestActivityAbsentReadDrawsNothing(t *testing.T) {
	snap := &model.Snapshot{}
	series := fakeSeries{history.IOWrite(): {5, 5, 5}}
	view := history.View{Width: 10, Zoom: 1}

	if _, _, ok := activityStrips(snap, series, fakeProcs{}, view); ok {
		t.Error("activity should be absent when the read series is missing")
	}
	top, bottom := renderActivity(snap, series, fakeProcs{}, view, 40, 5)
	if top != "" || bottom != "" {
		t.Error("a present write series must not be drawn without the read series")
	}
}

func TestActivityAbsentWriteDrawsNothing(t *testing.T) {
	snap := &model.Snapshot{}
	series := fakeSeries{history.IORead(): {10, 50, 30}}
	view := history.View{Width: 10, Zoom: 1}

	top, bottom := renderActivity(snap, series, fakeProcs{}, view, 40, 5)
	if top != "" || bottom != "" {
		t.Error("a present read series must not be drawn without the write series")
	}
}

func TestActivityScenario(t *testing.T) {
	snap := &model.Snapshot{ReadBps: 30, WriteBps: 5, TopReaderPID: 42}
	series := fakeSeries{
		history.IORead():  {10, 50, 30},
		history.IOWrite(): {5, 5, 5},
	}
	procs := fakeProcs{42: {PID: 42, Name: "proc", User: "u"}}
	view := history.View{Width: 10, Zoom: 1}

	read, write, ok := activityStrips(snap, series, procs, view)
	if !ok {
		t.Fatal("both series present, activity should render")
	}
	if read.Max != 50 {
		t.Errorf("read local max = %d, want 50", read.Max)
	}
	if write.Max != 5 {
		t.Errorf("write local max = %d, want 5", write.Max)
	}
	if !strings.Contains(read.Title, "50 B") {
		t.Errorf("read title %q should carry the windowed peak", read.Title)
	}
	if !strings.Contains(write.Title, "5 B") {
		t.Errorf("write title %q should carry the windowed peak", write.Title)
	}
	if !strings.Contains(read.Title, "[42 - proc - u]") {
		t.Errorf("read title %q should attribute the top reader", read.Title)
	}
	// No top writer tracked: empty label, not an error.
	if strings.Contains(write.Title, " - ") {
		t.Errorf("write title %q should have no attribution", write.Title)
	}
}

func TestAttributionLabel(t *testing.T) {
	procs := fakeProcs{42: {PID: 42, Name: "proc", User: "u"}}
	if got := attributionLabel(42, procs); got != "[42 - proc - u]" {
		t.Errorf("attributionLabel = %q", got)
	}
	if got := attributionLabel(99, procs); got != "" {
		t.Errorf("exited PID should yield empty label, got %q", got)
	}
	if got := attributionLabel(0, procs); got != "" {
		t.Errorf("zero PID should yield empty label, got %q", got)
	}
}
