/*
NAME
  parser.go - the WordParser interface and the follow-set alternative type.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package trdfee

// WordParser tries to consume one 32-bit data word against the current
// Context. If the word does not match, it returns matched=false and the
// driver tries the next candidate in the current AlternativeSet. If it
// matches, it returns matched=true, optionally along with a non-nil follow
// that the driver pushes onto the top of its alternative-set stack (follow[0]
// becomes the next alternative set) - this is the
// tagged-variant "Accept / AcceptWithFollowSet / Reject" design note
// expressed as a (bool, []AlternativeSet) pair, since a plain boolean
// already tells the driver which case it got.
type WordParser interface {
	Name() string
	Try(ctx *Context, word uint32) (matched bool, follow []AlternativeSet)
}

// AlternativeSet is an ordered list of word parsers that are candidates for
// the next incoming word; the driver tries them in order and accepts the
// first match.
type AlternativeSet []WordParser

// funcParser adapts a plain function to WordParser, for parsers whose
// acceptance test is a literal word comparison rather than a compiled bit
// pattern (parse_tracklet, parse_eot, parse_eod, skip_until_eod,
// find_eod_or_mcmhdr).
type funcParser struct {
	name string
	fn   func(ctx *Context, word uint32) (bool, []AlternativeSet)
}

func (f *funcParser) Name() string { return f.name }

func (f *funcParser) Try(ctx *Context, word uint32) (bool, []AlternativeSet) {
	return f.fn(ctx, word)
}

// names returns the parser names of an AlternativeSet, for NO MATCH
// diagnostics.
func (a AlternativeSet) names() []string {
	n := make([]string, len(a))
	for i, p := range a {
		n[i] = p.Name()
	}
	return n
}
