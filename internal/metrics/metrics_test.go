package metrics

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCollector_Bytes(t *testing.T) {
	c := New()

	c.InputRead(1024)
	c.OutputWritten(512)
	c.InputRead(100)

	if c.TotalBytesIn() != 1124 {
		t.Errorf("bytes in = %d, want 1124", c.TotalBytesIn())
	}
	if c.TotalBytesOut() != 512 {
		t.Errorf("bytes out = %d, want 512", c.TotalBytesOut())
	}
}

func TestCollector_Transforms(t *testing.T) {
	c := New()

	c.Encoded(10, 2)
	c.Decoded(4, 1)
	c.Encoded(3, 0)

	snap := c.Snapshot()
	if snap.EncodeRuns != 2 || snap.DecodeRuns != 1 {
		t.Errorf("runs = %d/%d, want 2/1", snap.EncodeRuns, snap.DecodeRuns)
	}
	if snap.RunesEncoded != 13 {
		t.Errorf("runes encoded = %d, want 13", snap.RunesEncoded)
	}
	if snap.TokensDecoded != 4 {
		t.Errorf("tokens decoded = %d, want 4", snap.TokensDecoded)
	}
	if c.UnmappedCount() != 3 {
		t.Errorf("unmapped = %d, want 3", c.UnmappedCount())
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.Decoded(7, 0)
	c.OutputWritten(42)

	raw := c.JSON()
	if strings.Contains(raw, "\n") {
		t.Errorf("JSON should be a single line: %q", raw)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if snap.TokensDecoded != 7 {
		t.Errorf("JSON tokens decoded = %d", snap.TokensDecoded)
	}
	if snap.BytesOut != 42 {
		t.Errorf("JSON bytes out = %d", snap.BytesOut)
	}
}

func TestNilCollector_NoOps(t *testing.T) {
	var c *Collector

	// None of these should panic.
	c.InputRead(100)
	c.OutputWritten(100)
	c.Encoded(1, 1)
	c.Decoded(1, 1)

	if c.TotalBytesIn() != 0 || c.TotalBytesOut() != 0 {
		t.Error("nil collector should return 0")
	}
	if c.UnmappedCount() != 0 {
		t.Error("nil collector should return 0")
	}
	if c.Snapshot() != (Snapshot{}) {
		t.Error("nil snapshot should be zero")
	}
	if j := c.JSON(); j == "" {
		t.Error("nil JSON should return valid JSON")
	}
}
