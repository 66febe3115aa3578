/*
NAME
  words_mcm.go - MCM header, ADC mask, and ADC data word parsers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package trdfee

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/alicetrd/trdfee/bitword"
	"github.com/alicetrd/trdfee/diag"
)

// channelBuffer is the ADC sample accumulator for one MCM payload. One
// buffer is allocated per payload and handed in turn to every channel's
// parse_adcdata instances - the follow-set stack guarantees strictly
// sequential processing, so a channel's final instance flushes the buffer
// via Context.StoreDigits before the next channel starts overwriting it.
type channelBuffer struct {
	samples []uint16
}

func newChannelBuffer(ntb uint32) *channelBuffer {
	return &channelBuffer{samples: make([]uint16, ntb)}
}

var patMCMHdr = bitword.MustCompile("1rrr : mmmm : eeee : eeee : eeee : eeee : eeee : 1100")

// ParseMCMHdr decodes a multi-chip-module header: its ROB/MCM identifiers,
// and (depending on whether zero suppression is active) either the
// follow-set for an ADC mask word or the follow-set for 21 channels of raw
// ADC data.
var ParseMCMHdr = &patternParser{name: "parse_mcmhdr", pat: patMCMHdr, handle: mcmHdrHandle}

func mcmHdrHandle(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet) {
	ctx.ROB = f.Get('r')
	ctx.MCM = f.Get('m')
	event := f.Get('e')
	ctx.logLine(fmt.Sprintf("MCM %d:%02d event %d", ctx.ROB, ctx.MCM, event))

	if ctx.Major&0x20 != 0 {
		return true, []AlternativeSet{{ParseADCMask}}
	}

	// No zero suppression: every one of the 21 channels is present in full.
	// One buffer is handed across all 21 channels in turn: the follow-set
	// stack guarantees strictly sequential processing, so each channel's
	// final parse_adcdata flushes it via store_digits before the next
	// channel starts overwriting it.
	buf := newChannelBuffer(ctx.NTB)
	var follow []AlternativeSet
	for ch := 0; ch < 21; ch++ {
		for tb := uint32(0); tb < ctx.NTB; tb += 3 {
			follow = append(follow, AlternativeSet{newADCDataParser(ch, int(tb), buf)})
		}
	}
	follow = append(follow, AlternativeSet{ParseMCMHdr, ParseEOD})
	return true, follow
}

var patADCMask = bitword.MustCompile("nncc : cccm : mmmm : mmmm : mmmm : mmmm : mmmm : 1100")

// ParseADCMask decodes which of the 21 ADC channels carry data in a
// zero-suppressed MCM payload.
var ParseADCMask = &patternParser{name: "parse_adcmask", pat: patADCMask, handle: adcMaskHandle}

func adcMaskHandle(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet) {
	m := f.Get('m')
	c := f.Get('c')

	var desc strings.Builder
	desc.WriteString("MSK ")

	buf := newChannelBuffer(ctx.NTB)
	var follow []AlternativeSet
	count := 0
	for ch := 0; ch < 21; ch++ {
		if ch == 9 || ch == 19 {
			desc.WriteByte(' ')
		}
		if m&(1<<uint(ch)) != 0 {
			count++
			desc.WriteString(strconv.Itoa(ch % 10))
			for tb := uint32(0); tb < ctx.NTB; tb += 3 {
				follow = append(follow, AlternativeSet{newADCDataParser(ch, int(tb), buf)})
			}
		} else {
			desc.WriteByte('.')
		}
	}
	expected := int(^c) & 0x1F
	fmt.Fprintf(&desc, "  (%d channels)", expected)
	follow = append(follow, AlternativeSet{ParseMCMHdr, ParseEOD})

	if count != expected {
		// Invariant violation: logged, not fatal. Parsing continues using
		// whatever channels the mask bits actually named.
		ctx.logError(fmt.Sprintf("adc mask invariant violation: popcount(mask)=%d (bits.OnesCount32=%d) != (~complement)&0x1F=%d",
			count, bits.OnesCount32(m), expected))
	}
	ctx.logLine(desc.String())
	return true, follow
}

var patADCData = bitword.MustCompile("xxxx:xxxx:xxyy:yyyy:yyyy:zzzz:zzzz:zzff")

// adcDataParser decodes one ADC data word for a specific (channel, timebin)
// within a shared channelBuffer. It carries no validation bits of its own:
// any word is accepted once it is the head of the current alternative set.
type adcDataParser struct {
	channel int
	timebin int
	buf     *channelBuffer
}

func newADCDataParser(channel, timebin int, buf *channelBuffer) *adcDataParser {
	return &adcDataParser{channel: channel, timebin: timebin, buf: buf}
}

func (p *adcDataParser) Name() string { return "parse_adcdata" }

func (p *adcDataParser) Try(ctx *Context, word uint32) (bool, []AlternativeSet) {
	f := patADCData.Extract(word)
	x := f.Get('x')
	y := f.Get('y')
	z := f.Get('z')
	flag := f.Get('f')

	if ctx.Log != nil {
		chLabel := "      "
		if p.timebin == 0 {
			chLabel = fmt.Sprintf("ch %2d ", p.channel)
		}
		ctx.logLine(fmt.Sprintf("ADC %c %stb %2d (f=%d)   %4d  %4d  %4d", diag.Marker(word), chLabel, p.timebin, flag, x, y, z))
	}

	samples := [3]uint16{uint16(x), uint16(y), uint16(z)}
	for i, s := range samples {
		if p.timebin+i < len(p.buf.samples) {
			p.buf.samples[p.timebin+i] = s
		}
	}

	if p.timebin+3 >= len(p.buf.samples) {
		if ctx.StoreDigits != nil {
			ctx.StoreDigits(ctx.Event, ctx.Det, int(ctx.ROB), int(ctx.MCM), p.channel, p.buf.samples)
		}
	}

	return true, nil
}
