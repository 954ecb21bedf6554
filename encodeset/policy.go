/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package encodeset defines the percent-encoding policies ("encode sets")
// that the WHATWG URL Standard attaches to each URL component, plus the
// catalogue of concrete sets this module ships.
//
// A Policy is a value, not a trait: its shouldEscape predicate is backed by
// a 128-bit bitset so call sites can branch on the set once, outside any
// per-byte loop, and let the compiler fuse the rest. Policies are built
// once at package init and never mutated afterwards.
package encodeset

import "github.com/bits-and-blooms/bitset"

// Policy is an encode-set: which ASCII bytes must be percent-encoded, and
// which ASCII bytes are substituted by another ASCII byte instead (e.g.
// form-encoding's space -> '+').
type Policy struct {
	escape       *bitset.BitSet
	substitute   [128]byte
	substituteOK [128]bool
	unsubstitute [128]byte
	unsubOK      [128]bool
}

// ShouldEscape reports whether b must be percent-encoded under this policy.
// Non-ASCII bytes always escape regardless of the policy.
func (p Policy) ShouldEscape(b byte) bool {
	if b >= 0x80 {
		return true
	}
	return p.escape.Test(uint(b))
}

// Substitute returns the ASCII byte that b is substituted by under this
// policy, if any.
func (p Policy) Substitute(b byte) (byte, bool) {
	if b >= 0x80 {
		return 0, false
	}
	return p.substitute[b], p.substituteOK[b]
}

// Unsubstitute returns the ASCII byte that decodes back to b under this
// policy's substitution, if any. It is the inverse of Substitute: when
// Substitute(c) = (b, true), Unsubstitute(b) = (c, true).
func (p Policy) Unsubstitute(b byte) (byte, bool) {
	if b >= 0x80 {
		return 0, false
	}
	return p.unsubstitute[b], p.unsubOK[b]
}

// newBase builds a Policy that escapes exactly the given ASCII bytes and
// performs no substitution.
func newBase(extra ...byte) Policy {
	bs := bitset.New(128)
	for _, b := range extra {
		bs.Set(uint(b))
	}
	return Policy{escape: bs}
}

// extend returns a new Policy that escapes everything parent escapes, plus
// extra; substitution rules are inherited from parent unchanged.
func extend(parent Policy, extra ...byte) Policy {
	bs := parent.escape.Clone()
	for _, b := range extra {
		bs.Set(uint(b))
	}
	p := Policy{escape: bs}
	p.substitute = parent.substitute
	p.substituteOK = parent.substituteOK
	p.unsubstitute = parent.unsubstitute
	p.unsubOK = parent.unsubOK
	return p
}

// withSubstitution returns a copy of p with a single substitute/unsubstitute
// pair added. c is substituted by sub; sub unsubstitutes back to c.
func withSubstitution(p Policy, c, sub byte) Policy {
	p.substitute[c] = sub
	p.substituteOK[c] = true
	p.unsubstitute[sub] = c
	p.unsubOK[sub] = true
	return p
}

// PassthroughEncodeSet escapes nothing and substitutes nothing. It exists so
// callers can run percent.Decoder (or percent.DecodeAll) without any substitution
// being relevant to the result.
var PassthroughEncodeSet = newBase()
