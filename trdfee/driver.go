/*
NAME
  driver.go - the predictive FEE parser driver.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package trdfee

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Mode selects the resync alternative the driver pushes when every parser
// in the current alternative set rejects a word.
type Mode int

const (
	// ModeLegacy resyncs by discarding everything up to the next EOD.
	ModeLegacy Mode = iota
	// ModeStreaming resyncs by scanning for either EOD or a recognizable
	// MCM header, routing to whichever is found first.
	ModeStreaming
)

// Driver is the predictive parsing engine: it holds the follow-set stack
// and a Context, and dispatches each incoming word against the head
// alternative set. A Driver is never shared between independent streams;
// see cru.Reader, which keeps one Driver per half-CRU link.
type Driver struct {
	Ctx  *Context
	Mode Mode

	stack []AlternativeSet
}

// NewDriver returns a Driver ready to parse one FEE link, with its stack
// initialized to the steady start state.
func NewDriver(ctx *Context, mode Mode) *Driver {
	d := &Driver{Ctx: ctx, Mode: mode}
	d.Reset()
	return d
}

// Reset re-initializes the follow-set stack to [ [parse_tracklet, parse_eot] ].
// Independent stream reads call Reset between streams; NextEvent does not
// reset the stack.
func (d *Driver) Reset() {
	d.stack = []AlternativeSet{{ParseTracklet, ParseEOT}}
}

// NextEvent advances the event counter. It is the only API that does so.
func (d *Driver) NextEvent() { d.Ctx.Event++ }

// StepWords feeds an in-memory slice of words - one optical link's worth -
// through the driver. Processing of this slice stops early if the stack is
// exhausted (the "extra data after end of readlist" condition); remaining
// words are discarded, matching the streaming Read behavior.
func (d *Driver) StepWords(words []uint32) {
	for _, w := range words {
		d.Ctx.CurrentLinkPos++
		if !d.step(w) {
			return
		}
	}
}

// Read consumes nbytes from src as little-endian uint32 words, feeding each
// to the driver. If the stack is exhausted it stops parsing early (without
// error) and seeks src past the rest of the byte range, discarding it.
func (d *Driver) Read(src Source, nbytes int) error {
	if nbytes%4 != 0 {
		return errors.Errorf("trdfee: byte range %d is not a multiple of the 4-byte word size", nbytes)
	}
	var buf [4]byte
	for i := 0; i < nbytes/4; i++ {
		pos, err := src.Tell()
		if err != nil {
			return errors.Wrap(err, "trdfee: reading stream position")
		}
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return errors.Wrapf(err, "trdfee: reading word at %#x", pos)
		}
		d.Ctx.CurrentLinkPos = pos
		word := binary.LittleEndian.Uint32(buf[:])
		if !d.step(word) {
			if err := src.Seek(pos + int64(nbytes-4*i)); err != nil {
				return errors.Wrap(err, "trdfee: skipping rest of byte range")
			}
			return nil
		}
	}
	return nil
}

// step processes one word against the head alternative set. It reports
// whether the stack still has entries to process further words - false
// means the caller must stop feeding this stream.
func (d *Driver) step(word uint32) bool {
	d.Ctx.CurrentDword = word

	if len(d.stack) == 0 {
		d.Ctx.logError(fmt.Sprintf("extra data after end of readlist: %08X", word))
		return false
	}

	alt := d.stack[0]
	d.stack = d.stack[1:]

	for _, p := range alt {
		matched, follow := p.Try(d.Ctx, word)
		if !matched {
			continue
		}
		if follow != nil {
			// Prepend, so follow[0] is the next alternative set.
			d.stack = append(append([]AlternativeSet(nil), follow...), d.stack...)
		}
		return true
	}

	d.Ctx.logError(fmt.Sprintf("NO MATCH - expected %v found %X", alt.names(), word))
	var resync AlternativeSet
	switch d.Mode {
	case ModeStreaming:
		resync = AlternativeSet{FindEODOrMCMHdr}
	default:
		resync = AlternativeSet{ParseEOD, SkipUntilEOD}
	}
	d.stack = append([]AlternativeSet{resync}, d.stack...)
	return true
}
