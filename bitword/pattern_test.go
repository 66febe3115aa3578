/*
NAME
  pattern_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitword

import "testing"

func TestCompileHC0(t *testing.T) {
	pat := MustCompile("xmmm : mmmm : nnnn : nnnq : qqss : sssp : ppcc : ci01")

	// Low two bits must read "01" for a valid HC0 word.
	if pat.ValidateMask != 0x3 || pat.ValidateValue != 0x1 {
		t.Fatalf("validate mask/value = %#x/%#x, want 0x3/0x1", pat.ValidateMask, pat.ValidateValue)
	}

	// sm occupies 5 bits starting at bit 9; this is derivable only from the
	// pattern string, not from the stale comments carried over from the
	// original implementation (which claimed 3 bits).
	word := uint32(0x1) // validation bits only
	word |= 0x1F << 9    // sm = 0x1F
	f := pat.Extract(word)
	if got := f.Get('s'); got != 0x1F {
		t.Errorf("sm = %#x, want 0x1f", got)
	}
}

func TestCompileRejectsWrongLength(t *testing.T) {
	_, err := Compile("xxxx")
	if err == nil {
		t.Fatal("expected error for short pattern")
	}
}

func TestMatchesAndExtractMCMHeader(t *testing.T) {
	pat := MustCompile("1rrr : mmmm : eeee : eeee : eeee : eeee : eeee : 1100")

	// rob=5, mcm=9, event=0x12345
	word := uint32(0x80000000) // leading '1'
	word |= 5 << 28
	word |= 9 << 24
	word |= (0x12345 & 0xFFFFF) << 4
	word |= 0xC // trailing "1100"

	if !pat.Matches(word) {
		t.Fatalf("word %#x should match MCM header pattern", word)
	}
	f := pat.Extract(word)
	if got := f.Get('r'); got != 5 {
		t.Errorf("rob = %d, want 5", got)
	}
	if got := f.Get('m'); got != 9 {
		t.Errorf("mcm = %d, want 9", got)
	}
	if got := f.Get('e'); got != 0x12345 {
		t.Errorf("event = %#x, want 0x12345", got)
	}

	// Flip a validation bit and confirm rejection.
	if pat.Matches(word ^ 0x1) {
		t.Fatal("word with corrupted trailer should not match")
	}
}

func TestADCDataPatternHasNoValidationBits(t *testing.T) {
	pat := MustCompile("xxxx:xxxx:xxyy:yyyy:yyyy:zzzz:zzzz:zzff")
	if pat.ValidateMask != 0 {
		t.Fatalf("adcdata pattern should carry no validation bits, got mask %#x", pat.ValidateMask)
	}

	word := uint32(0)
	word |= 0x3FF << 22 // x
	word |= 0x155 << 12 // y
	word |= 0x2AA << 2  // z
	word |= 0x2         // f

	f := pat.Extract(word)
	if got := f.Get('x'); got != 0x3FF {
		t.Errorf("x = %#x, want 0x3ff", got)
	}
	if got := f.Get('y'); got != 0x155 {
		t.Errorf("y = %#x, want 0x155", got)
	}
	if got := f.Get('z'); got != 0x2AA {
		t.Errorf("z = %#x, want 0x2aa", got)
	}
	if got := f.Get('f'); got != 0x2 {
		t.Errorf("f = %d, want 2", got)
	}
}

func TestFieldNamesPreservesFirstOccurrenceOrder(t *testing.T) {
	pat := MustCompile("tttt : ttbb : bbbb : bbbb : bbbb : bbpp : pphh : hh01")
	names := pat.FieldNames()
	want := []byte{'t', 'b', 'p', 'h'}
	if len(names) != len(want) {
		t.Fatalf("FieldNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("FieldNames() = %v, want %v", names, want)
		}
	}
}
