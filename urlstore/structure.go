/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlstore

// Structure is the normalized layout descriptor for a serialized URL: the
// length of each component plus the three discriminators (Sigil,
// SchemeKind, CannotBeABaseURL) needed to interpret those lengths. All
// component offsets are derived from it; none are stored directly.
//
// A zero length means the component is absent, with one exception:
// Hostname may be zero-length yet present, when Sigil is SigilAuthority
// (an empty host after "//", e.g. "file:///path").
type Structure struct {
	SchemeLength   int
	UsernameLength int
	PasswordLength int
	HostnameLength int
	PortLength     int
	PathLength     int
	QueryLength    int
	FragmentLength int

	Sigil            Sigil
	SchemeKind       SchemeKind
	CannotBeABaseURL bool
}

// HasCredentialSeparator reports whether a ':' and/or '@' separator is
// present, i.e. whether there are any credentials at all.
func (s Structure) HasCredentialSeparator() bool {
	return s.UsernameLength > 0 || s.PasswordLength > 0
}

// HostnamePresent reports whether the hostname component exists at all
// (possibly as an empty string), which is true exactly when the authority
// sigil was written.
func (s Structure) HostnamePresent() bool {
	return s.Sigil == SigilAuthority
}

// CannotHaveCredentialsOrPort reports whether this structure's scheme kind
// or shape forbids a non-empty userinfo or port.
func (s Structure) CannotHaveCredentialsOrPort() bool {
	return s.SchemeKind == SchemeFile || s.CannotBeABaseURL || s.HostnameLength == 0
}

func (s Structure) schemeStart() int { return 0 }
func (s Structure) schemeEnd() int   { return s.SchemeLength }
func (s Structure) afterSigil() int  { return s.schemeEnd() + s.Sigil.Len() }

func (s Structure) usernameStart() int { return s.afterSigil() }
func (s Structure) passwordStart() int { return s.usernameStart() + s.UsernameLength }

func (s Structure) hostnameStart() int {
	sep := 0
	if s.HasCredentialSeparator() {
		sep = 1 // '@'
	}
	return s.passwordStart() + s.PasswordLength + sep
}

func (s Structure) portStart() int { return s.hostnameStart() + s.HostnameLength }

func (s Structure) pathStart() int {
	if s.Sigil == SigilAuthority {
		return s.portStart() + s.PortLength
	}
	return s.afterSigil()
}

func (s Structure) queryStart() int    { return s.pathStart() + s.PathLength }
func (s Structure) fragmentStart() int { return s.queryStart() + s.QueryLength }

// End returns the total serialized length implied by this structure: the
// offset one past the fragment (or wherever the last present component
// ends).
func (s Structure) End() int { return s.fragmentStart() + s.FragmentLength }

// Range returns component c's byte range and whether it is present.
// Absent components return a zero-width range at the position they would
// occupy, so callers can still use it to know where an insertion would go.
func (s Structure) Range(c Component) (r Range, present bool) {
	switch c {
	case Scheme:
		return Range{s.schemeStart(), s.schemeEnd()}, true
	case Username:
		start := s.usernameStart()
		return Range{start, start + s.UsernameLength}, s.UsernameLength > 0
	case Password:
		start := s.passwordStart()
		return Range{start, start + s.PasswordLength}, s.PasswordLength > 0
	case Hostname:
		start := s.hostnameStart()
		return Range{start, start + s.HostnameLength}, s.HostnamePresent()
	case Port:
		start := s.portStart()
		return Range{start, start + s.PortLength}, s.PortLength > 0
	case Path:
		start := s.pathStart()
		return Range{start, start + s.PathLength}, s.PathLength > 0
	case Query:
		start := s.queryStart()
		return Range{start, start + s.QueryLength}, s.QueryLength > 0
	case Fragment:
		start := s.fragmentStart()
		return Range{start, start + s.FragmentLength}, s.FragmentLength > 0
	default:
		panic("urlstore: invalid Component")
	}
}

// AuthorityRange returns the whole authority substring's range (from right
// after the sigil through the end of the port) and whether the authority
// sigil is present at all.
func (s Structure) AuthorityRange() (r Range, present bool) {
	if s.Sigil != SigilAuthority {
		return Range{}, false
	}
	return Range{s.afterSigil(), s.portStart() + s.PortLength}, true
}

// lengthField returns a pointer to the length field backing component c,
// for setSimpleComponent-style in-place length updates. Components whose
// change affects sibling offsets (username, password, hostname, path) are
// deliberately excluded: see Component.IsSimple.
func (s *Structure) lengthField(c Component) *int {
	switch c {
	case Port:
		return &s.PortLength
	case Query:
		return &s.QueryLength
	case Fragment:
		return &s.FragmentLength
	default:
		panic("urlstore: lengthField called on a non-simple component")
	}
}
