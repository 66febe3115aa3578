/*
NAME
  words_generic.go - tracklet/EOT/EOD/resync word parsers.

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

	"github.com/alicetrd/trdfee/diag"
)

// ParseTracklet accepts any word that is not the end-of-tracklet marker.
var ParseTracklet = &funcParser{
	name: "parse_tracklet",
	fn: func(ctx *Context, word uint32) (bool, []AlternativeSet) {
		if word == ctx.Markers.EOT {
			return false, nil
		}
		return true, []AlternativeSet{{ParseTracklet, ParseEOT}}
	},
}

// ParseEOT accepts the end-of-tracklet marker.
var ParseEOT = &funcParser{
	name: "parse_eot",
	fn: func(ctx *Context, word uint32) (bool, []AlternativeSet) {
		if word != ctx.Markers.EOT {
			return false, nil
		}
		ctx.logLine("EOT")
		return true, []AlternativeSet{{ParseEOT, ParseHC0}}
	},
}

// ParseEOD accepts the end-of-data marker.
var ParseEOD = &funcParser{
	name: "parse_eod",
	fn: func(ctx *Context, word uint32) (bool, []AlternativeSet) {
		if word != ctx.Markers.EOD {
			return false, nil
		}
		ctx.logLine("EOD")
		return true, []AlternativeSet{{ParseEOD}}
	},
}

// SkipUntilEOD is the legacy-mode resync parser: it consumes everything
// until it sees EOD, at which point parse_eod takes over.
var SkipUntilEOD = &funcParser{
	name: "skip_until_eod",
	fn: func(ctx *Context, word uint32) (bool, []AlternativeSet) {
		if word == ctx.Markers.EOD {
			return false, nil
		}
		ctx.logLine("SKP ... skip parsing ...")
		return true, []AlternativeSet{{ParseEOD, SkipUntilEOD}}
	},
}

// FindEODOrMCMHdr is the streaming-mode resync parser: it routes directly to
// parse_eod or parse_mcmhdr as soon as it recognizes either, rather than
// discarding everything up to the next EOD.
var FindEODOrMCMHdr = &funcParser{
	name: "find_eod_or_mcmhdr",
	fn: func(ctx *Context, word uint32) (bool, []AlternativeSet) {
		switch {
		case word == ctx.Markers.EOD:
			return ParseEOD.Try(ctx, word)
		case word&0x8000000F == 0x8000000C:
			return ParseMCMHdr.Try(ctx, word)
		default:
			ctx.logLine(fmt.Sprintf("SKP %c ... trying to find: eod | mcmhdr - %X", diag.Marker(word), word))
			return true, []AlternativeSet{{FindEODOrMCMHdr}}
		}
	},
}
