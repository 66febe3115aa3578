/*
NAME
  pattern.go - declarative bit-field decoder for 32-bit TRAP/TRD data words.

DESCRIPTION
  See Readme.md

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitword compiles TRAP User Manual style bit-pattern strings such as
// "xmmm : mmmm : nnnn : nnnq : qqss : sssp : ppcc : ci01" into a mask/shift
// table plus a validation mask/value pair, and uses the compiled pattern to
// both validate and extract fields from 32-bit data words.
package bitword

import "github.com/pkg/errors"

// Field is one named bit-field extracted from a word: the bits selected by
// Mask, right-shifted by Shift.
type Field struct {
	Name  byte
	Mask  uint32
	Shift uint
}

// Pattern is a compiled bit-pattern descriptor.
//
// A word is considered valid under the pattern iff
// (word & ValidateMask) == ValidateValue.
type Pattern struct {
	ValidateMask  uint32
	ValidateValue uint32
	fields        []Field // in order of first occurrence in the pattern string
}

type fieldAccum struct {
	mask  uint32
	shift uint
}

// Compile walks pattern ignoring ':' and ' ' separators. Each remaining
// character must be a letter (a field name) or '0'/'1' (a validation
// constraint bit). Position i (0-based, left to right) among the 32
// significant characters maps to bit p = 31-i of the word. Identical
// characters accumulate into one field whose mask is the OR of their bit
// positions and whose shift is the smallest p seen (the field's LSB
// position). '0' and '1' characters are validation bits rather than fields:
// their masks combine into ValidateMask, and the '1' mask alone becomes
// ValidateValue.
func Compile(pattern string) (*Pattern, error) {
	order := make([]byte, 0, 32)
	info := make(map[byte]*fieldAccum)

	i := 0
	for _, r := range pattern {
		if r == ':' || r == ' ' {
			continue
		}
		if i >= 32 {
			return nil, errors.Errorf("bitword: pattern %q has more than 32 significant characters", pattern)
		}
		c := byte(r)
		p := uint(31 - i)
		if a, ok := info[c]; ok {
			a.mask |= 1 << p
			a.shift = p // i strictly increasing => p strictly decreasing => always the new minimum
		} else {
			info[c] = &fieldAccum{mask: 1 << p, shift: p}
			order = append(order, c)
		}
		i++
	}
	if i != 32 {
		return nil, errors.Errorf("bitword: pattern %q has %d significant characters, want 32", pattern, i)
	}

	pat := &Pattern{}
	if a, ok := info['0']; ok {
		pat.ValidateMask |= a.mask
	}
	if a, ok := info['1']; ok {
		pat.ValidateMask |= a.mask
		pat.ValidateValue |= a.mask
	}
	for _, c := range order {
		if c == '0' || c == '1' {
			continue
		}
		a := info[c]
		pat.fields = append(pat.fields, Field{Name: c, Mask: a.mask, Shift: a.shift})
	}
	return pat, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level pattern tables built once at init time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches reports whether word satisfies the pattern's validation bits.
func (p *Pattern) Matches(word uint32) bool {
	return word&p.ValidateMask == p.ValidateValue
}

// Fields is the set of named field values extracted from one word.
type Fields map[byte]uint32

// Get returns the value of field name, or 0 if the pattern has no such
// field.
func (f Fields) Get(name byte) uint32 { return f[name] }

// Extract decodes every field in the pattern from word. It does not check
// Matches; callers that care about validation should call Matches first.
func (p *Pattern) Extract(word uint32) Fields {
	f := make(Fields, len(p.fields))
	for _, fl := range p.fields {
		f[fl.Name] = (word & fl.Mask) >> fl.Shift
	}
	return f
}

// FieldNames returns the pattern's field names in order of first occurrence,
// excluding the '0'/'1' validation characters.
func (p *Pattern) FieldNames() []byte {
	names := make([]byte, len(p.fields))
	for i, fl := range p.fields {
		names[i] = fl.Name
	}
	return names
}
