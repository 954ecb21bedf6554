/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package urlstore implements the normalized URL storage model: a single
// contiguous code-unit buffer plus a compact Structure header describing
// every component's offset and length, a sigil discriminator, a scheme
// kind, and a cannot-be-a-base flag. It exposes component-range queries, a
// generic single-component setter, and bulk ordered replacement operations
// that preserve the structural invariants and always pick the smallest
// header footprint that still fits.
package urlstore

// Component names one of the eight parts of a URL that this model tracks,
// giving a concrete parameter type to withComponentBytes and
// setSimpleComponent.
type Component int

const (
	Scheme Component = iota
	Username
	Password
	Hostname
	Port
	Path
	Query
	Fragment
)

func (c Component) String() string {
	switch c {
	case Scheme:
		return "scheme"
	case Username:
		return "username"
	case Password:
		return "password"
	case Hostname:
		return "hostname"
	case Port:
		return "port"
	case Path:
		return "path"
	case Query:
		return "query"
	case Fragment:
		return "fragment"
	default:
		return "component(?)"
	}
}

// IsSimple reports whether component's change never affects the offsets of
// its siblings, the precondition for using setSimpleComponent instead of a
// full replaceSubrange: query, fragment, and port all sit at the tail of
// their neighbors with no component depending on their length except the
// one immediately after them. Fragment has nothing after it at all, while
// query's only follower, fragment, and port's only follower, path, start
// right where the changed component ends, which setSimpleComponent's
// single-range splice keeps correct automatically.
func (c Component) IsSimple() bool {
	return c == Query || c == Fragment || c == Port
}

// Sigil is the 2-byte marker inserted right after the scheme.
type Sigil int

const (
	SigilNone Sigil = iota
	SigilAuthority // "//"
	SigilPath      // "/."
)

// Len returns the sigil's code-unit length: 0 for SigilNone, 2 otherwise.
func (s Sigil) Len() int {
	if s == SigilNone {
		return 0
	}
	return 2
}

func (s Sigil) String() string {
	switch s {
	case SigilNone:
		return ""
	case SigilAuthority:
		return "//"
	case SigilPath:
		return "/."
	default:
		return "?"
	}
}

// SchemeKind drives special-scheme behavior (default port, authority
// requirements, path canonicalization). Host/port parsing that consumes
// SchemeKind lives in the external parser; the storage layer only needs
// to carry the value through.
type SchemeKind int

const (
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
)

// IsSpecial reports whether kind is one of the six special schemes defined
// by the WHATWG URL Standard.
func (k SchemeKind) IsSpecial() bool {
	return k != SchemeOther
}

// DefaultPort returns the scheme's default port number and whether it has
// one. file: has no default port.
func (k SchemeKind) DefaultPort() (port int, ok bool) {
	switch k {
	case SchemeHTTP, SchemeWS:
		return 80, true
	case SchemeHTTPS, SchemeWSS:
		return 443, true
	case SchemeFTP:
		return 21, true
	default:
		return 0, false
	}
}

// Range is a half-open byte range [Start, End) within a Storage's buffer.
type Range struct {
	Start, End int
}

// Len returns the range's width in bytes.
func (r Range) Len() int { return r.End - r.Start }
