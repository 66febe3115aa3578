/*
NAME
  context.go - mutable parsing state accumulated across one FEE link's words.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package trdfee implements a word-oriented predictive parser for the ALICE
// TRD front-end electronics (FEE) readout stream: tracklets, half-chamber
// header words, MCM headers, ADC channel masks and ADC digit samples.
package trdfee

import (
	"github.com/ausocean/utils/logging"

	"github.com/alicetrd/trdfee/diag"
)

// Markers holds the configuration constants that both the FEE firmware and
// this parser must agree on. Unlike the original implementation (which read
// these from module-level globals shared by every parser instance), Markers
// travels with a Context so that independent streams - in particular the 15
// links of a half-CRU page, see cru.Reader - never share marker state.
type Markers struct {
	EOT   uint32 // end-of-tracklet marker word.
	EOD   uint32 // end-of-data marker word.
	Magic uint32 // start/magic marker, reserved for framing layers above this one.
}

// DefaultMarkers holds the conventional TRD marker values. Callers that know
// their firmware uses different values should build their own Markers.
var DefaultMarkers = Markers{
	EOT: 0x10001000,
	EOD: 0x00000000,
}

// DigitSink receives a complete ADC channel's worth of samples. It is
// invoked synchronously from the ADC-data parser; it must not retain
// samples beyond the call, since the backing array is reused by the next
// channel in the same MCM payload - copy the slice if it needs to outlive
// the call.
type DigitSink func(event uint32, det, rob, mcm, channel int, samples []uint16)

// Context is the mutable state accumulated while parsing one FEE link.
// A Context belongs to exactly one Driver; it is never shared between
// independent streams.
type Context struct {
	Markers Markers

	// From HC0.
	Major, Minor uint32
	NHW          uint32
	SM           uint32
	Stack        uint32
	Layer        uint32
	Side         uint32

	// From HC1.
	NTB        uint32
	BCCounter  uint32
	PreCounter uint32
	PrePhase   uint32

	// Derived from HC0/HC1.
	HC  string // textual label "ss_c_pA|B"
	Det int    // 18*SM + 6*Stack + Layer

	// From the MCM header.
	ROB uint32
	MCM uint32

	Event uint32 // advanced only by NextEvent

	// Diagnostics: position and value of the word currently being processed.
	CurrentLinkPos int64
	CurrentDword   uint32

	StoreDigits DigitSink
	Log         logging.Logger
}

// NewContext returns a Context ready to parse one FEE link, using markers
// for end-of-tracklet/end-of-data recognition, sink to receive completed
// ADC channels, and log for diagnostics (may be nil to discard logging).
func NewContext(markers Markers, sink DigitSink, log logging.Logger) *Context {
	return &Context{Markers: markers, StoreDigits: sink, Log: log}
}

// logLine emits a diagnostic line labeled with the current stream position
// and word value, per the "Diagnostic formatting" component.
func (c *Context) logLine(msg string) {
	if c.Log == nil {
		return
	}
	c.Log.Debug(diag.FormatLine(c.CurrentLinkPos, c.CurrentDword, msg))
}

// logError is like logLine but for NO MATCH / extra-data / invariant
// violation conditions, which are non-fatal but worth surfacing above
// debug level.
func (c *Context) logError(msg string) {
	if c.Log == nil {
		return
	}
	c.Log.Error(diag.FormatLine(c.CurrentLinkPos, c.CurrentDword, msg))
}

// LogError is the exported form of logError, for collaborators outside this
// package - in particular cru.Reader, which surfaces page-framing
// diagnostics (padding mismatches) through a link's Context.
func (c *Context) LogError(msg string) { c.logError(msg) }
