/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import "github.com/badu/weburl/encodeset"

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// Decoder is the lazy sequence Dec(D, E): a pull-based percent-decoder over
// a source byte sequence, parameterised by an encode-set policy used only
// for its Unsubstitute rule. Decoding never fails: every byte sequence has
// a well-defined decoding.
type Decoder struct {
	src    []byte
	pos    int
	policy encodeset.Policy
}

// NewDecoder returns a Decoder over src using policy's Unsubstitute rule.
// Pass encodeset.PassthroughEncodeSet when no substitution is relevant.
func NewDecoder(src []byte, policy encodeset.Policy) *Decoder {
	return &Decoder{src: src, policy: policy}
}

// Next returns the next decoded byte, or ok=false once the source is
// exhausted.
func (d *Decoder) Next() (b byte, ok bool) {
	if d.pos >= len(d.src) {
		return 0, false
	}
	c := d.src[d.pos]

	if c == '%' {
		if d.pos+2 < len(d.src) && isHexDigit(d.src[d.pos+1]) && isHexDigit(d.src[d.pos+2]) {
			v := hexVal(d.src[d.pos+1])<<4 | hexVal(d.src[d.pos+2])
			d.pos += 3
			return v, true
		}
		d.pos++
		if u, ok := d.policy.Unsubstitute('%'); ok {
			return u, true
		}
		return '%', true
	}

	d.pos++
	if c < 0x80 {
		if u, ok := d.policy.Unsubstitute(c); ok {
			return u, true
		}
	}
	return c, true
}

// DecodeAll eagerly materialises Dec(src, policy). It is provided for tests
// and small inputs; a streaming caller should drive a Decoder directly.
func DecodeAll(src []byte, policy encodeset.Policy) []byte {
	dec := NewDecoder(src, policy)
	out := make([]byte, 0, len(src))
	for {
		b, ok := dec.Next()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}
