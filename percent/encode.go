/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import "github.com/badu/weburl/encodeset"

// drainBufSize is the fixed stack buffer size used by both drainers: at
// least 15 bytes, matching a typical small-string inline capacity, so that
// short source sequences (up to 5 percent-encoded bytes) drain in a single
// callback.
const drainBufSize = 16

// WriteBuffered drains Enc(src, policy) forward, flushing fixed-size chunks
// to write as soon as the next group would overflow the stack buffer. The
// concatenation of all chunks passed to write equals Flatten(). It reports
// whether any group was not a plain SourceByte, i.e. whether encoding
// changed src.
//
// write must not retain its argument past the call: the backing array is
// reused on the next flush.
func WriteBuffered(src []byte, policy encodeset.Policy, write func([]byte)) bool {
	var buf [drainBufSize]byte
	n := 0
	mutated := false
	for _, b := range src {
		g := Classify(b, policy)
		if g.Kind != SourceByte {
			mutated = true
		}
		if n+g.Len() > drainBufSize {
			write(buf[:n])
			n = 0
		}
		n = g.AppendTo(buf[:], n)
	}
	if n > 0 {
		write(buf[:n])
	}
	return mutated
}

// WriteBufferedFromBack drains Enc(src, policy) in reverse source order: it
// emits chunks (each internally in forward byte order) such that
// reverse-concatenating the chunks equals Flatten(). It reports the same
// "did encoding mutate the input" boolean as WriteBuffered.
//
// WriteBufferedFromBack exists for sources that only support reverse
// iteration efficiently (e.g. a caller filling a destination buffer from
// its tail backward, the way URLStorage's in-place splice does to avoid
// clobbering data it hasn't read yet).
func WriteBufferedFromBack(src []byte, policy encodeset.Policy, write func([]byte)) bool {
	var buf [drainBufSize]byte
	pos := drainBufSize
	mutated := false
	for i := len(src) - 1; i >= 0; i-- {
		g := Classify(src[i], policy)
		if g.Kind != SourceByte {
			mutated = true
		}
		if pos-g.Len() < 0 {
			write(buf[pos:])
			pos = drainBufSize
		}
		pos -= g.Len()
		g.AppendTo(buf[:], pos)
	}
	if pos < drainBufSize {
		write(buf[pos:])
	}
	return mutated
}
