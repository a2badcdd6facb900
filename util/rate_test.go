package util

import (
	"testing"
	"time"
)

func TestRate(t *testing.T) {
	if got := Rate(100, 300, 2*time.Second); got != 100 {
		t.Errorf("Rate(100, 300, 2s) = %v, want 100", got)
	}
}

func TestRateZeroInterval(t *testing.T) {
	if got := Rate(100, 300, 0); got != 0 {
		t.Errorf("Rate with zero dt = %v, want 0", got)
	}
}

func TestRateCounterWrap(t *testing.T) {
	if got := Rate(300, 100, time.Second); got != 0 {
		t.Errorf("Rate with wrapped counter = %v, want 0", got)
	}
}

func TestDelta(t *testing.T) {
	if got := Delta(10, 25); got != 15 {
		t.Errorf("Delta(10, 25) = %d, want 15", got)
	}
	if got := Delta(25, 10); got != 0 {
		t.Errorf("Delta(25, 10) = %d, want 0", got)
	}
}
