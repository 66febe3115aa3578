/*
NAME
  format.go - human-readable diagnostic line formatting shared by the parser.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package diag provides diagnostic formatting and visualization for decoded
// TRD readout data: the per-word log-line format shared by every parser,
// and offline inspection helpers (waveform plots, basic descriptive
// statistics) for decoded ADC channels.
package diag

import "fmt"

// FormatLine renders one diagnostic line labeled with the stream position
// and word value that produced it, followed by msg.
func FormatLine(pos int64, word uint32, msg string) string {
	return fmt.Sprintf("%06x %08x  %s", pos, word, msg)
}

// markerGlyphs are the four marker characters keyed by the low two bits of
// a data word, used throughout diagnostic output to flag word framing at a
// glance.
var markerGlyphs = [4]byte{'#', '#', '|', ':'}

// Marker returns the diagnostic glyph for word's low two bits.
func Marker(word uint32) byte {
	return markerGlyphs[word&0x3]
}
