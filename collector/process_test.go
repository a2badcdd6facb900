package collector

import (
	"testing"

	"github.com/avelys/disktop/model"
)

func TestTopConsumers(t *testing.T) {
	deltas := map[int32]ioSample{
		10: {readBytes: 500, writeBytes: 10},
		20: {readBytes: 100, writeBytes: 900},
		30: {readBytes: 200, writeBytes: 200},
	}
	reader, writer := topConsumers(deltas)
	if reader != 10 {
		t.Errorf("top reader = %d, want 10", reader)
	}
	if writer != 20 {
		t.Errorf("top writer = %d, want 20", writer)
	}
}

func TestTopConsumersNoTraffic(t *testing.T) {
	reader, writer := topConsumers(map[int32]ioSample{
		10: {},
		20: {},
	})
	if reader != 0 || writer != 0 {
		t.Errorf("idle deltas should attribute nothing, got %d/%d", reader, writer)
	}
}

func TestResolveZeroPIDAbsent(t *testing.T) {
	c := NewProcessCollector()
	c.table[42] = model.ProcessInfo{PID: 42, Name: "proc", User: "u"}

	if _, ok := c.Resolve(0); ok {
		t.Error("PID 0 must resolve to absent")
	}
	info, ok := c.Resolve(42)
	if !ok || info.Name != "proc" || info.User != "u" {
		t.Errorf("Resolve(42) = %+v, %v", info, ok)
	}
	if _, ok := c.Resolve(43); ok {
		t.Error("unknown PID must resolve to absent")
	}
}
