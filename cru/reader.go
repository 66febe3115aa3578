/*
NAME
  reader.go - half-CRU page framing driver.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cru

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/alicetrd/trdfee/trdfee"
)

// Reader forwards the byte ranges of a half-CRU page stream to one
// trdfee.Driver per link. Each link keeps its own Driver instance - unlike
// the source this design is grounded on, which drove all 15 links through a
// single shared parser instance. Sharing one instance would leak parsing
// context (firmware version, MCM ids, follow-set stack) between physically
// independent links; see trdfee.Context's doc comment for the same
// reasoning applied at the context level.
type Reader struct {
	drivers [NumLinks]*trdfee.Driver

	header *Header
	link   int
	unread int
}

// NewReader returns a Reader with one Driver per link, each built by
// calling newDriver(link). Pass a constructor rather than pre-built drivers
// so each link can get its own trdfee.Context (and therefore its own
// DigitSink closure carrying the link number, if the caller wants one).
func NewReader(newDriver func(link int) *trdfee.Driver) *Reader {
	r := &Reader{}
	for i := 0; i < NumLinks; i++ {
		r.drivers[i] = newDriver(i)
	}
	return r
}

// Read consumes one half-CRU page of exactly size bytes from src, forwarding
// each link's byte range to its Driver and validating the trailing padding.
// It returns an error for insufficient bytes for a page header and for
// failures reading from src (the header, a link's byte range, or the
// padding). A padding mismatch is logged through the link-0 driver's
// context, not returned as an error.
func (r *Reader) Read(src trdfee.Source, size int) error {
	remaining := size

	for remaining > 0 {
		if r.header == nil {
			if remaining < HeaderSize {
				if remaining == MaxPadding {
					return r.consumePadding(src, remaining)
				}
				return errors.Errorf("cru: insufficient bytes for page header: %d available, need %d", remaining, HeaderSize)
			}
			buf := make([]byte, HeaderSize)
			if err := readFull(src, buf); err != nil {
				return errors.Wrap(err, "cru: reading page header")
			}
			hdr, err := ParseHeader(buf)
			if err != nil {
				return errors.Wrap(err, "cru: parsing page header")
			}
			r.header = hdr
			r.link = 0
			r.unread = int(hdr.DataSize[0])
			remaining -= HeaderSize
			continue
		}

		if r.unread == 0 {
			r.link++
			if r.link >= NumLinks {
				r.header = nil
				continue
			}
			r.unread = int(r.header.DataSize[r.link])
			continue
		}

		n := r.unread
		if n > remaining {
			n = remaining
		}
		if err := r.drivers[r.link].Read(src, n); err != nil {
			return errors.Wrapf(err, "cru: link %d", r.link)
		}
		r.unread -= n
		remaining -= n
	}

	return nil
}

// consumePadding reads and discards the trailing padding region, logging
// (but not failing on) a mismatch against the expected 0xEE fill byte.
func (r *Reader) consumePadding(src trdfee.Source, n int) error {
	buf := make([]byte, n)
	if err := readFull(src, buf); err != nil {
		return errors.Wrap(err, "cru: reading page padding")
	}
	for _, b := range buf {
		if b != PaddingByte {
			r.drivers[0].Ctx.LogError(fmt.Sprintf("page padding mismatch: expected %#x fill, got %#x", PaddingByte, b))
			break
		}
	}
	return nil
}

func readFull(src trdfee.Source, buf []byte) error {
	off := 0
	for off < len(buf) {
		n, err := src.Read(buf[off:])
		off += n
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("cru: short read: got %d of %d bytes", off, len(buf))
		}
	}
	return nil
}
