// Package metrics provides lightweight counters describing a cunnycode
// run: how much text went in and out and how much of it the alphabet
// could map.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// Collector tracks transcoding metrics.
type Collector struct {
	bytesIn  atomic.Int64
	bytesOut atomic.Int64

	encodeRuns    atomic.Int64
	decodeRuns    atomic.Int64
	runesEncoded  atomic.Int64
	tokensDecoded atomic.Int64
	unmapped      atomic.Int64

	startTime time.Time
}

// New creates a collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── I/O metrics ──────────────────────────────────────────────────────

// InputRead records n bytes of resolved input.
func (c *Collector) InputRead(n int) {
	if c == nil {
		return
	}
	c.bytesIn.Add(int64(n))
}

// OutputWritten records n bytes written to stdout.
func (c *Collector) OutputWritten(n int) {
	if c == nil {
		return
	}
	c.bytesOut.Add(int64(n))
}

// TotalBytesIn returns total input bytes.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total output bytes.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Transform metrics ────────────────────────────────────────────────

// Encoded records one encode pass.
func (c *Collector) Encoded(mapped, unmapped int) {
	if c == nil {
		return
	}
	c.encodeRuns.Add(1)
	c.runesEncoded.Add(int64(mapped))
	c.unmapped.Add(int64(unmapped))
}

// Decoded records one decode pass.
func (c *Collector) Decoded(mapped, unmapped int) {
	if c == nil {
		return
	}
	c.decodeRuns.Add(1)
	c.tokensDecoded.Add(int64(mapped))
	c.unmapped.Add(int64(unmapped))
}

// UnmappedCount returns the number of characters and tokens that could
// not be translated.
func (c *Collector) UnmappedCount() int64 {
	if c == nil {
		return 0
	}
	return c.unmapped.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Elapsed       string `json:"elapsed"`
	BytesIn       int64  `json:"bytes_in"`
	BytesOut      int64  `json:"bytes_out"`
	EncodeRuns    int64  `json:"encode_runs"`
	DecodeRuns    int64  `json:"decode_runs"`
	RunesEncoded  int64  `json:"runes_encoded"`
	TokensDecoded int64  `json:"tokens_decoded"`
	Unmapped      int64  `json:"unmapped"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Elapsed:       time.Since(c.startTime).String(),
		BytesIn:       c.bytesIn.Load(),
		BytesOut:      c.bytesOut.Load(),
		EncodeRuns:    c.encodeRuns.Load(),
		DecodeRuns:    c.decodeRuns.Load(),
		RunesEncoded:  c.runesEncoded.Load(),
		TokensDecoded: c.tokensDecoded.Load(),
		Unmapped:      c.unmapped.Load(),
	}
}

// JSON returns the snapshot as a compact JSON string.
func (c *Collector) JSON() string {
	data, _ := json.Marshal(c.Snapshot())
	return string(data)
}
