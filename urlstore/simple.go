/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlstore

// ComponentEncoder streams value's encoded form to emit, one chunk at a
// time (typically driven by percent.WriteBuffered over an encodeset.Policy
// chosen from scheme), and reports whether encoding actually changed
// anything. It is called once to measure the encoded length and, only if
// needsEncoding, a second time to stream the bytes into their final
// destination, so the chunks the encoder emits must be a pure function of
// value and scheme, and the encoder must have no side effects beyond
// calling emit.
type ComponentEncoder func(value []byte, scheme SchemeKind, emit func(chunk []byte)) (needsEncoding bool)

// SetSimpleComponent is the generic single-component setter for components
// whose change does not affect sibling offsets (Port, Query, Fragment; see
// Component.IsSimple). prefix is the single mandatory separator byte
// written before the encoded value (':' for port, '?' for query, '#' for
// fragment).
//
// base is a copy of the structure the result should otherwise have (usually
// s.Structure() itself, or one already updated for other components changed
// in the same logical operation); the caller does not need to know the
// encoded length up front, since component's length field in base is
// overwritten with the measured 1+encoded-length after the two-pass
// algorithm (measure, then stream) runs.
func (s Storage) SetSimpleComponent(component Component, value []byte, prefix byte, base Structure, encoder ComponentEncoder) Storage {
	if !component.IsSimple() {
		panic("urlstore: SetSimpleComponent called on a non-simple component: " + component.String())
	}

	r, _ := s.structure.Range(component)

	totalLen := 0
	needsEncoding := encoder(value, s.structure.SchemeKind, func(chunk []byte) {
		totalLen += len(chunk)
	})
	insertCount := 1 + totalLen

	newStructure := base
	*newStructure.lengthField(component) = insertCount

	writer := func(dst []byte) int {
		dst[0] = prefix
		if needsEncoding {
			pos := 1
			encoder(value, s.structure.SchemeKind, func(chunk []byte) {
				pos += copy(dst[pos:], chunk)
			})
		} else {
			copy(dst[1:], value)
		}
		return insertCount
	}

	return s.ReplaceSubrange(r, insertCount, newStructure, writer)
}

// RemoveSimpleComponent deletes component entirely (the "newValue = none"
// case): the component's range is removed and its length field zeroed in
// newStructure. newStructure must already reflect
// that zeroing; it is passed explicitly, the same way SetSimpleComponent
// takes its post-change structure, so the storage engine never has to
// special-case recomputing offsets itself.
func (s Storage) RemoveSimpleComponent(component Component, newStructure Structure) Storage {
	if !component.IsSimple() {
		panic("urlstore: RemoveSimpleComponent called on a non-simple component: " + component.String())
	}
	r, present := s.structure.Range(component)
	if !present {
		return s
	}
	return s.RemoveSubrange(r, newStructure)
}
