/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlstore

// Writer fills dst (a freshly-initialized, uninitialized-content slice of
// exactly the command's InsertCount) and returns the number of bytes
// actually written. The engine traps if that count doesn't match
// len(dst): a writer that misreports its length is a programmer error,
// never a recoverable failure.
type Writer func(dst []byte) int

// Command is one splice in an ordered, non-overlapping multi-replace:
// replace Subrange with InsertCount freshly-written bytes.
type Command struct {
	Subrange    Range
	InsertCount int
	Write       Writer
}

func runWriter(w Writer, dst []byte) {
	n := w(dst)
	if n != len(dst) {
		panic("urlstore: writer reported a mismatched byte count")
	}
}

// validateCommands traps if commands are not sorted by ascending Subrange
// or overlap; both are programmer errors in the caller (the parser or a
// setter), not recoverable conditions.
func validateCommands(commands []Command, count int) {
	prevEnd := 0
	for _, cmd := range commands {
		if cmd.Subrange.Start < prevEnd || cmd.Subrange.Start > cmd.Subrange.End {
			panic("urlstore: replacement commands are not sorted or overlap")
		}
		if cmd.Subrange.End > count {
			panic("urlstore: replacement command out of range")
		}
		prevEnd = cmd.Subrange.End
	}
}

// newCount computes the total buffer length multiReplaceSubrange will
// produce: oldCount plus the sum of each command's (InsertCount - width).
func newCount(oldCount int, commands []Command) int {
	n := oldCount
	for _, cmd := range commands {
		n += cmd.InsertCount - cmd.Subrange.Len()
	}
	return n
}

// MultiReplaceSubrange applies an ordered list of non-overlapping splices
// and atomically adopts newStructure, returning the resulting Storage:
// mutate in place when this Storage uniquely owns a buffer whose current
// variant is still the optimal one for the result and whose capacity
// suffices; otherwise
// allocate a fresh buffer of the optimal variant and copy+splice into it.
func (s Storage) MultiReplaceSubrange(commands []Command, newStructure Structure) Storage {
	oldCount := s.Count()
	validateCommands(commands, oldCount)
	total := newCount(oldCount, commands)

	if err := newStructure.Validate(); err != nil {
		panic("urlstore: " + err.Error())
	}
	if newStructure.End() != total {
		panic("urlstore: newStructure's derived length does not match the computed byte count")
	}

	wantVariant := optimalVariant(total)
	if s.isUnique() && wantVariant == s.variant && cap(s.buf.bytes) >= total {
		s.replaceInPlace(commands, oldCount, total)
		s.structure = newStructure
		return s
	}
	return s.replaceIntoNewBuffer(commands, total, newStructure)
}

// cumulativeShiftSafety walks the running net shift (InsertCount minus
// Subrange width) before each command and reports whether that running
// total ever goes positive (content moving rightward somewhere) or ever
// goes negative (content moving leftward somewhere). A batch whose running
// total never goes positive can be spliced with a single forward
// (left-to-right) pass without clobbering unread source bytes; a batch
// whose running total never goes negative can be spliced with a single
// backward (right-to-left) pass. A batch where the running total changes
// sign needs neither direction to be uniformly safe.
func cumulativeShiftSafety(commands []Command) (forwardSafe, backwardSafe bool) {
	forwardSafe, backwardSafe = true, true
	offset := 0
	for _, cmd := range commands {
		offset += cmd.InsertCount - cmd.Subrange.Len()
		if offset > 0 {
			forwardSafe = false
		}
		if offset < 0 {
			backwardSafe = false
		}
	}
	return forwardSafe, backwardSafe
}

// replaceInPlace splices commands into the buffer without reallocating,
// choosing whichever single-direction pass the batch's net shift pattern
// allows, or falling back to a snapshot-backed pass when neither is safe on
// its own.
//
// A pass that always writes a piece's destination no further than its own
// source (forward, when the running net shift never goes positive) never
// reaches into a not-yet-read gap, because every later gap's source starts
// at or beyond the current gap's source end. The mirror image holds for
// the backward pass when the running net shift never goes negative. A
// batch whose running net shift changes sign partway through can have a
// command whose destination, from either direction, overlaps a gap another
// command still needs to read; replaceInPlaceViaScratch sidesteps that by
// reading from a throwaway copy of the original bytes instead of the live
// buffer.
func (s Storage) replaceInPlace(commands []Command, oldCount, total int) {
	forwardSafe, backwardSafe := cumulativeShiftSafety(commands)
	switch {
	case forwardSafe:
		s.replaceInPlaceForward(commands, oldCount, total)
	case backwardSafe:
		s.replaceInPlaceBackward(commands, oldCount, total)
	default:
		s.replaceInPlaceViaScratch(commands, oldCount, total)
	}
}

// replaceInPlaceForward walks commands first to last, copying each gap and
// writing each insert at its final absolute offset before advancing. Safe
// whenever the batch's running net shift never goes positive (see
// cumulativeShiftSafety): every destination position trails or matches its
// source position, so nothing is overwritten before it is read.
func (s Storage) replaceInPlaceForward(commands []Command, oldCount, total int) {
	data := s.buf.bytes[:total]
	srcIdx, dstIdx := 0, 0
	for _, cmd := range commands {
		gapLen := cmd.Subrange.Start - srcIdx
		if gapLen > 0 {
			copy(data[dstIdx:dstIdx+gapLen], data[srcIdx:srcIdx+gapLen])
			dstIdx += gapLen
		}
		runWriter(cmd.Write, data[dstIdx:dstIdx+cmd.InsertCount])
		dstIdx += cmd.InsertCount
		srcIdx = cmd.Subrange.End
	}
	copy(data[dstIdx:total], data[srcIdx:oldCount])
	s.buf.bytes = data
}

// replaceInPlaceBackward walks commands last to first, always writing at
// each piece's final absolute offset in the already length-extended
// buffer. Safe whenever the batch's running net shift never goes negative:
// every destination position leads or matches its source position, so
// nothing is overwritten before it is read.
func (s Storage) replaceInPlaceBackward(commands []Command, oldCount, total int) {
	data := s.buf.bytes[:total]

	srcEnd := oldCount
	dstEnd := total
	for i := len(commands) - 1; i >= 0; i-- {
		cmd := commands[i]
		gapLen := srcEnd - cmd.Subrange.End
		if gapLen > 0 {
			copy(data[dstEnd-gapLen:dstEnd], data[cmd.Subrange.End:cmd.Subrange.End+gapLen])
		}
		insertEnd := dstEnd - gapLen
		insertStart := insertEnd - cmd.InsertCount
		runWriter(cmd.Write, data[insertStart:insertEnd])

		srcEnd = cmd.Subrange.Start
		dstEnd = insertStart
	}
	if srcEnd > 0 {
		copy(data[:dstEnd], data[:srcEnd])
	}
	s.buf.bytes = data
}

// replaceInPlaceViaScratch handles a batch whose running net shift changes
// sign partway through, where neither a pure forward nor a pure backward
// pass can guarantee every gap is read before some other command's write
// reaches it. It snapshots the untouched source bytes once, then reads
// gaps from that snapshot instead of the live buffer, so the forward pass
// over the live buffer can never race its own writes.
func (s Storage) replaceInPlaceViaScratch(commands []Command, oldCount, total int) {
	scratch := make([]byte, oldCount)
	copy(scratch, s.buf.bytes[:oldCount])

	data := s.buf.bytes[:total]
	srcIdx, dstIdx := 0, 0
	for _, cmd := range commands {
		gapLen := cmd.Subrange.Start - srcIdx
		if gapLen > 0 {
			copy(data[dstIdx:dstIdx+gapLen], scratch[srcIdx:srcIdx+gapLen])
			dstIdx += gapLen
		}
		runWriter(cmd.Write, data[dstIdx:dstIdx+cmd.InsertCount])
		dstIdx += cmd.InsertCount
		srcIdx = cmd.Subrange.End
	}
	copy(data[dstIdx:total], scratch[srcIdx:oldCount])
	s.buf.bytes = data
}

// replaceIntoNewBuffer allocates a fresh buffer of the optimal variant for
// total bytes, then does the forward copy-and-splice pass into it.
func (s Storage) replaceIntoNewBuffer(commands []Command, total int, newStructure Structure) Storage {
	out := make([]byte, total)
	srcIdx, dstIdx := 0, 0
	for _, cmd := range commands {
		gapLen := cmd.Subrange.Start - srcIdx
		if gapLen > 0 {
			copy(out[dstIdx:dstIdx+gapLen], s.buf.bytes[srcIdx:srcIdx+gapLen])
			dstIdx += gapLen
		}
		runWriter(cmd.Write, out[dstIdx:dstIdx+cmd.InsertCount])
		dstIdx += cmd.InsertCount
		srcIdx = cmd.Subrange.End
	}
	copy(out[dstIdx:], s.buf.bytes[srcIdx:])

	return Storage{
		buf:       &sharedBuffer{refs: 1, bytes: out},
		structure: newStructure,
		variant:   optimalVariant(total),
	}
}

// ReplaceSubrange splices insertCount freshly-initialized bytes in place of
// r and atomically adopts newStructure.
func (s Storage) ReplaceSubrange(r Range, insertCount int, newStructure Structure, writer Writer) Storage {
	return s.MultiReplaceSubrange([]Command{{Subrange: r, InsertCount: insertCount, Write: writer}}, newStructure)
}

// RemoveSubrange is the degenerate case of ReplaceSubrange that inserts
// nothing.
func (s Storage) RemoveSubrange(r Range, newStructure Structure) Storage {
	return s.MultiReplaceSubrange([]Command{{Subrange: r, InsertCount: 0, Write: func([]byte) int { return 0 }}}, newStructure)
}
