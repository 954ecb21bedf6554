/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package percent implements the percent-encoding and percent-decoding
// engine: a lazy byte transform parameterised by an encodeset.Policy, plus
// buffered forward and reverse drainers sized for a fixed stack buffer.
package percent

import "github.com/badu/weburl/encodeset"

// Kind distinguishes the three ways a source byte can appear in an encoded
// sequence.
type Kind int

const (
	// SourceByte passes the source byte through unchanged.
	SourceByte Kind = iota
	// SubstitutedByte replaces the source byte with another ASCII byte.
	SubstitutedByte
	// PercentEncodedByte expands the source byte to "%" plus two uppercase
	// hex digits.
	PercentEncodedByte
)

// Group is one element of the encoded sequence Enc(S, E): the classification
// of a single source byte under an encode-set policy, plus the byte to emit
// (the original byte for SourceByte/PercentEncodedByte, the substituted byte
// for SubstitutedByte).
type Group struct {
	Kind Kind
	Byte byte
}

// Len returns the number of bytes this group expands to: 1 for SourceByte
// and SubstitutedByte, 3 for PercentEncodedByte.
func (g Group) Len() int {
	if g.Kind == PercentEncodedByte {
		return 3
	}
	return 1
}

const upperHex = "0123456789ABCDEF"

// AppendTo writes g's expansion into buf starting at offset n, in forward
// byte order, and returns the new offset. The caller must ensure
// n+g.Len() <= len(buf).
func (g Group) AppendTo(buf []byte, n int) int {
	if g.Kind == PercentEncodedByte {
		buf[n] = '%'
		buf[n+1] = upperHex[g.Byte>>4]
		buf[n+2] = upperHex[g.Byte&0x0F]
		return n + 3
	}
	buf[n] = g.Byte
	return n + 1
}

// Classify determines the Group for a single source byte b under policy.
// Substitution takes priority over escaping: a byte with a defined
// substitution is always a SubstitutedByte, even if the policy would also
// escape it.
func Classify(b byte, policy encodeset.Policy) Group {
	if sub, ok := policy.Substitute(b); ok {
		return Group{Kind: SubstitutedByte, Byte: sub}
	}
	if b >= 0x80 || policy.ShouldEscape(b) {
		return Group{Kind: PercentEncodedByte, Byte: b}
	}
	return Group{Kind: SourceByte, Byte: b}
}

// Encoder is the lazy sequence Enc(S, E): its i-th Group corresponds
// exactly to the i-th byte of the source, preserving the source's
// positional index domain.
type Encoder struct {
	src    []byte
	policy encodeset.Policy
}

// NewEncoder returns the lazy encoding of src under policy.
func NewEncoder(src []byte, policy encodeset.Policy) Encoder {
	return Encoder{src: src, policy: policy}
}

// Len reports the number of source bytes (and therefore groups).
func (e Encoder) Len() int { return len(e.src) }

// At returns the Group for the i-th source byte.
func (e Encoder) At(i int) Group { return Classify(e.src[i], e.policy) }

// Flatten eagerly materialises the full encoded byte sequence. It is
// provided for tests and small inputs; production call sites should prefer
// WriteBuffered / WriteBufferedFromBack to avoid the allocation.
func (e Encoder) Flatten() []byte {
	out := make([]byte, 0, len(e.src))
	for i := 0; i < e.Len(); i++ {
		g := e.At(i)
		var tmp [3]byte
		n := g.AppendTo(tmp[:], 0)
		out = append(out, tmp[:n]...)
	}
	return out
}
