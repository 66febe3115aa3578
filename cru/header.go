/*
NAME
  header.go - half-CRU page header parsing.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cru implements half-CRU page framing: the fixed 64-byte page
// header followed by 15 concatenated per-link byte ranges and trailing
// padding, driving a trdfee.Driver per link.
package cru

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/alicetrd/trdfee/bitword"
)

// HeaderSize is the fixed byte length of a half-CRU page header.
const HeaderSize = 64

// NumLinks is the number of optical links multiplexed onto one half-CRU page.
const NumLinks = 15

// PaddingByte is the expected fill value of a page's trailing padding region.
const PaddingByte = 0xEE

// MaxPadding is the largest padding region a page may carry.
const MaxPadding = 32

// headerWordPattern decodes the leading 4-byte header word. Per the design
// note carried over from the source this is based on, the symbol the
// original decoder referenced for stopbit/bc/endpoint/evtype/version was
// never resolved upstream: Header.EventType/Endpoint/BunchCrossing/StopBit/
// Version are therefore best-effort and should not be relied on; DataSize
// and ErrFlags are the fields the core actually consumes.
var headerWordPattern = bitword.MustCompile("tttt : eeee : ssss : cccc : cccc : cccc : vvvv : vvvv")

// Header is one half-CRU page header: the 4-byte leading word plus the
// per-link error flags and data sizes that drive page framing.
type Header struct {
	EventType     uint32
	Endpoint      uint32
	BunchCrossing uint32
	StopBit       uint32
	Version       uint32

	ErrFlags [NumLinks]uint8
	DataSize [NumLinks]uint16
}

// ParseHeader decodes a 64-byte half-CRU page header. It returns an error
// only if data is shorter than HeaderSize; the leading header word's
// individual fields are decoded best-effort and are not validated, per
// headerWordPattern's doc comment.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, errors.Errorf("cru: page header needs %d bytes, got %d", HeaderSize, len(data))
	}

	h := &Header{}

	word := binary.BigEndian.Uint32(data[0:4])
	f := headerWordPattern.Extract(word)
	h.EventType = f.Get('t')
	h.Endpoint = f.Get('e')
	h.StopBit = f.Get('s')
	h.BunchCrossing = f.Get('c')
	h.Version = f.Get('v')

	for i := 0; i < NumLinks; i++ {
		h.ErrFlags[i] = data[8+i]
	}
	for i := 0; i < NumLinks; i++ {
		h.DataSize[i] = binary.BigEndian.Uint16(data[32+2*i : 34+2*i])
	}

	return h, nil
}
