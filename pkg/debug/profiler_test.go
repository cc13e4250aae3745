package debug

import (
	"strings"
	"testing"
	"time"
)

func TestProfilerRecord(t *testing.T) {
	p := NewProfiler()
	if _, ok := p.Measurement("block"); ok {
		t.Fatal("measurement exists before recording")
	}

	p.record("block", 2*time.Millisecond)
	p.record("block", 4*time.Millisecond)
	p.record("block", 3*time.Millisecond)

	m, ok := p.Measurement("block")
	if !ok {
		t.Fatal("measurement missing")
	}
	if m.Count != 3 {
		t.Errorf("Count = %d, want 3", m.Count)
	}
	if m.Min != 2*time.Millisecond || m.Max != 4*time.Millisecond {
		t.Errorf("Min/Max = %v/%v, want 2ms/4ms", m.Min, m.Max)
	}
	if m.Average() != 3*time.Millisecond {
		t.Errorf("Average() = %v, want 3ms", m.Average())
	}
}

func TestProfilerStart(t *testing.T) {
	p := NewProfiler()
	stop := p.Start("render")
	stop()
	m, ok := p.Measurement("render")
	if !ok || m.Count != 1 {
		t.Errorf("Measurement() = %+v, %v", m, ok)
	}

	p.Reset()
	if _, ok := p.Measurement("render"); ok {
		t.Error("measurement survived Reset")
	}
}

func TestProfilerReport(t *testing.T) {
	p := NewProfiler()
	if p.Report() != "no measurements recorded" {
		t.Errorf("empty report = %q", p.Report())
	}
	p.record("b", time.Millisecond)
	p.record("a", time.Millisecond)
	report := p.Report()
	if strings.Index(report, "a:") > strings.Index(report, "b:") {
		t.Errorf("report not sorted: %q", report)
	}
}

func TestMeasurementLoad(t *testing.T) {
	// 480 samples at 48 kHz last 10ms; 1ms per block is 10% load
	m := Measurement{Count: 2, Total: 2 * time.Millisecond}
	if got := m.Load(480, 48000); got < 9.999 || got > 10.001 {
		t.Errorf("Load() = %f, want 10", got)
	}
	if got := (Measurement{}).Load(480, 48000); got != 0 {
		t.Errorf("empty Load() = %f, want 0", got)
	}
}
