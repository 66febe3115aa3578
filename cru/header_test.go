/*
NAME
  header_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cru

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildHeader(dataSize [NumLinks]uint16, errFlags [NumLinks]uint8) []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], 0) // header word contents are unreliable; leave zeroed.
	for i := 0; i < NumLinks; i++ {
		buf[8+i] = errFlags[i]
	}
	for i := 0; i < NumLinks; i++ {
		binary.BigEndian.PutUint16(buf[32+2*i:34+2*i], dataSize[i])
	}
	return buf
}

func TestParseHeaderDecodesDataSizeAndErrFlags(t *testing.T) {
	var sizes [NumLinks]uint16
	var flags [NumLinks]uint8
	sizes[0] = 128
	sizes[1] = 64
	flags[3] = 0x7

	buf := buildHeader(sizes, flags)
	hdr, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}

	wantSizes := sizes
	if diff := cmp.Diff(wantSizes, hdr.DataSize); diff != "" {
		t.Errorf("DataSize mismatch (-want +got):\n%s", diff)
	}
	wantFlags := flags
	if diff := cmp.Diff(wantFlags, hdr.ErrFlags); diff != "" {
		t.Errorf("ErrFlags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeaderRejectsShortBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	if err == nil {
		t.Fatal("expected error for short header buffer")
	}
}
