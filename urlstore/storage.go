/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlstore

import "sync/atomic"

// sharedBuffer is the reference-counted allocation a Storage points to.
// Mutation first checks refs == 1 (sole ownership) before writing through
// it in place; a shared buffer is always copied first. The header lives in
// the Storage value itself (Structure, below), not inside sharedBuffer,
// matching the design note that the header and bytes never form a cyclic
// pointer graph.
type sharedBuffer struct {
	refs  int32
	bytes []byte
}

// Storage owns a URLStructure plus the code-unit buffer it describes.
// Storage is a value type: copying it with Clone shares the underlying
// buffer (incrementing refs) the way an Arc/Rc clone would. A naive Go
// struct copy (`other := s`) also shares the pointer but does NOT bump
// refs, which would make Storage believe it is uniquely owned when it is
// not: callers that need independent handles to the same bytes must use
// Clone, never a bare assignment.
type Storage struct {
	buf       *sharedBuffer
	structure Structure
	variant   Variant
}

// New allocates a Storage for the given structure and initial byte
// contents. It traps if structure.Validate() fails or if bytes' length
// doesn't match structure.End().
func New(structure Structure, bytes []byte) Storage {
	if err := structure.Validate(); err != nil {
		panic("urlstore: " + err.Error())
	}
	if len(bytes) != structure.End() {
		panic("urlstore: byte slice length does not match structure")
	}
	owned := make([]byte, len(bytes))
	copy(owned, bytes)
	return Storage{
		buf:       &sharedBuffer{refs: 1, bytes: owned},
		structure: structure,
		variant:   optimalVariant(len(owned)),
	}
}

// Clone returns a new Storage value that shares this one's buffer,
// incrementing the reference count so the next mutation on either handle
// sees the buffer as shared and copies before writing.
func (s Storage) Clone() Storage {
	atomic.AddInt32(&s.buf.refs, 1)
	return s
}

// isUnique reports whether this Storage is the sole owner of its buffer.
func (s Storage) isUnique() bool {
	return atomic.LoadInt32(&s.buf.refs) == 1
}

// Count returns the total number of code units currently stored.
func (s Storage) Count() int { return len(s.buf.bytes) }

// Structure returns the current structure header.
func (s Storage) Structure() Structure { return s.structure }

// Variant returns the header footprint currently in force for this
// Storage. It is always optimalVariant(s.Count()); see the Variant doc.
func (s Storage) Variant() Variant { return s.variant }

// EntireString returns the whole buffer as a string. The string is a copy
// of the bytes, made on every call; WithEntireString gives access to the
// buffer without copying.
func (s Storage) EntireString() string {
	return string(s.buf.bytes)
}

// WithEntireString invokes f with the full code-unit buffer and its UTF-8
// string view, without copying. f must not retain either argument past its
// return: a subsequent mutation may reallocate or rewrite the buffer.
func (s Storage) WithEntireString(f func(bytes []byte, str string)) {
	f(s.buf.bytes, string(s.buf.bytes))
}

// WithComponentBytes invokes f with component c's byte range, or calls f
// with ok=false if c is absent.
func (s Storage) WithComponentBytes(c Component, f func(b []byte, ok bool)) {
	r, present := s.structure.Range(c)
	if !present {
		f(nil, false)
		return
	}
	f(s.buf.bytes[r.Start:r.End], true)
}

// Component returns a copy of component c's bytes, or nil, ok=false if
// absent. Unlike WithComponentBytes this allocates, and is provided mainly
// for tests and callers that need an owned value.
func (s Storage) Component(c Component) (b []byte, ok bool) {
	r, present := s.structure.Range(c)
	if !present {
		return nil, false
	}
	out := make([]byte, r.Len())
	copy(out, s.buf.bytes[r.Start:r.End])
	return out, true
}

// WithAllAuthorityComponentBytes invokes f with the whole authority
// substring and the four sub-lengths (username, password, hostname, port),
// or calls f with ok=false if no authority sigil is present.
func (s Storage) WithAllAuthorityComponentBytes(f func(authority []byte, usernameLen, passwordLen, hostnameLen, portLen int, ok bool)) {
	r, present := s.structure.AuthorityRange()
	if !present {
		f(nil, 0, 0, 0, 0, false)
		return
	}
	f(s.buf.bytes[r.Start:r.End], s.structure.UsernameLength, s.structure.PasswordLength, s.structure.HostnameLength, s.structure.PortLength, true)
}
