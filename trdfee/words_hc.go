/*
NAME
  words_hc.go - half-chamber header word parsers (HC0..HC3).

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

	"github.com/alicetrd/trdfee/bitword"
)

// patternParser binds a compiled bit pattern to a handler, forming one row
// of the static (parser_id, pattern, handler) table the bit-pattern decoder
// is shared by.
type patternParser struct {
	name   string
	pat    *bitword.Pattern
	handle func(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet)
}

func (p *patternParser) Name() string { return p.name }

func (p *patternParser) Try(ctx *Context, word uint32) (bool, []AlternativeSet) {
	if !p.pat.Matches(word) {
		return false, nil
	}
	return p.handle(ctx, word, p.pat.Extract(word))
}

var patHC0 = bitword.MustCompile("xmmm : mmmm : nnnn : nnnq : qqss : sssp : ppcc : ci01")

// ParseHC0 decodes the first half-chamber header word: firmware version,
// number of extra header words, and the (sm, stack, layer, side) identifying
// this half-chamber.
var ParseHC0 = &patternParser{name: "parse_hc0", pat: patHC0, handle: hc0Handle}

func hc0Handle(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet) {
	ctx.Major = f.Get('m')
	ctx.Minor = f.Get('n')
	ctx.NHW = f.Get('q')
	ctx.SM = f.Get('s')
	ctx.Layer = f.Get('p')
	ctx.Stack = f.Get('c')
	ctx.Side = f.Get('i')
	ctx.Det = int(18*ctx.SM + 6*ctx.Stack + ctx.Layer)

	// Data corruption workaround: a zeroed version/header-word-count triple
	// has been observed in the field with no major/minor info. Preserve
	// forward progress by patching to the zero-suppressed default rather
	// than treating it as a parse failure.
	if ctx.Major == 0 && ctx.Minor == 0 && ctx.NHW == 0 {
		ctx.Major = 0x20
		ctx.NHW = 2
	}

	side := "A"
	if ctx.Side != 0 {
		side = "B"
	}
	ctx.HC = fmt.Sprintf("%02d_%d_%d%s", ctx.SM, ctx.Stack, ctx.Layer, side)
	ctx.logLine(fmt.Sprintf("HC0 %s ver=0x%X.%X nw=%d", ctx.HC, ctx.Major, ctx.Minor, ctx.NHW))

	follow := make([]AlternativeSet, 0, ctx.NHW+1)
	for i := uint32(0); i < ctx.NHW; i++ {
		// HC3/HC2 precede HC1 deliberately: both otherwise masquerade as an
		// HC1 carrying an invalid pre_phase >= 12, so specific beats general.
		follow = append(follow, AlternativeSet{ParseHC3, ParseHC2, ParseHC1})
	}
	follow = append(follow, AlternativeSet{ParseMCMHdr})
	return true, follow
}

var patHC1 = bitword.MustCompile("tttt : ttbb : bbbb : bbbb : bbbb : bbpp : pphh : hh01")

// ParseHC1 decodes the timebin count, bunch-crossing counter and
// pre-trigger counter/phase.
var ParseHC1 = &patternParser{name: "parse_hc1", pat: patHC1, handle: hc1Handle}

func hc1Handle(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet) {
	ctx.NTB = f.Get('t')
	ctx.BCCounter = f.Get('b')
	ctx.PreCounter = f.Get('p')
	ctx.PrePhase = f.Get('h')
	ctx.logLine(fmt.Sprintf("HC1 tb=%d bc=%d ptrg=%d phase=%d", ctx.NTB, ctx.BCCounter, ctx.PreCounter, ctx.PrePhase))
	return true, nil
}

var patHC2 = bitword.MustCompile("pgtc : nbaa : aaaa : xxxx : xxxx : xxxx : xx11 : 0001")

// ParseHC2 recognizes the filter-settings header word; its contents are not
// currently interpreted.
var ParseHC2 = &patternParser{name: "parse_hc2", pat: patHC2, handle: func(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet) {
	ctx.logLine("HC2 - filter settings")
	return true, nil
}}

var patHC3 = bitword.MustCompile("ssss : ssss : ssss : saaa : aaaa : aaaa : aa11 : 0101")

// ParseHC3 recognizes the firmware-version header word; its contents are
// not currently interpreted.
var ParseHC3 = &patternParser{name: "parse_hc3", pat: patHC3, handle: func(ctx *Context, word uint32, f bitword.Fields) (bool, []AlternativeSet) {
	ctx.logLine("HC3 - svn version")
	return true, nil
}}
