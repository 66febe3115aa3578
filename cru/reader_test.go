/*
NAME
  reader_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cru

import (
	"errors"
	"testing"

	"github.com/alicetrd/trdfee/trdfee"
)

// byteSource is a minimal in-memory trdfee.Source for tests.
type byteSource struct {
	buf []byte
	pos int64
}

func (s *byteSource) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.buf)) {
		return 0, errors.New("eof")
	}
	n := copy(p, s.buf[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *byteSource) Tell() (int64, error) { return s.pos, nil }

func (s *byteSource) Seek(offset int64) error {
	s.pos = offset
	return nil
}

func newTestDriver(link int) *trdfee.Driver {
	ctx := trdfee.NewContext(trdfee.DefaultMarkers, nil, nil)
	return trdfee.NewDriver(ctx, trdfee.ModeLegacy)
}

func TestReaderFramesTwoLinksAndPadding(t *testing.T) {
	var sizes [NumLinks]uint16
	sizes[0] = 128
	sizes[1] = 64
	var flags [NumLinks]uint8

	page := buildHeader(sizes, flags)
	page = append(page, make([]byte, 128)...) // link 0 payload, all-zero tracklet words.
	page = append(page, make([]byte, 64)...)   // link 1 payload.
	padding := make([]byte, MaxPadding)
	for i := range padding {
		padding[i] = PaddingByte
	}
	page = append(page, padding...)

	r := NewReader(newTestDriver)
	src := &byteSource{buf: page}

	if err := r.Read(src, len(page)); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if r.header != nil {
		t.Fatalf("page header should have been released after both links and padding were consumed")
	}
}

func TestReaderReportsFatalOnInsufficientHeaderBytes(t *testing.T) {
	r := NewReader(newTestDriver)
	src := &byteSource{buf: make([]byte, HeaderSize-4)}

	if err := r.Read(src, HeaderSize-4); err == nil {
		t.Fatal("expected an error for a page too short to carry a header")
	}
}

func TestReaderLogsPaddingMismatchWithoutFailing(t *testing.T) {
	var sizes [NumLinks]uint16
	var flags [NumLinks]uint8
	// All links empty: page is just header + padding.
	page := buildHeader(sizes, flags)
	padding := make([]byte, MaxPadding)
	padding[0] = 0x00 // corrupt the expected 0xEE fill.
	page = append(page, padding...)

	r := NewReader(newTestDriver)
	src := &byteSource{buf: page}

	if err := r.Read(src, len(page)); err != nil {
		t.Fatalf("padding mismatch should not be fatal, got: %v", err)
	}
}
