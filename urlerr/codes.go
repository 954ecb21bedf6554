/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package urlerr defines the validation-error vocabulary a URL parser
// reports into this core, and the callback contract the parser uses to
// report it. Every ValidationError is data: the core never inspects the
// error to alter its own behavior, and nothing in this package can return a
// Go error from a function that fails: these are observations, not control
// flow.
package urlerr

// Code enumerates every validation error the parser may report. Names
// follow the WHATWG URL Standard's own vocabulary.
type Code int

const (
	// UnexpectedC0OrSpace: a leading/trailing C0 control or space was
	// trimmed from the input.
	UnexpectedC0OrSpace Code = iota + 1
	// ASCIITabOrNewline: a tab or newline was removed from the input.
	ASCIITabOrNewline
	// InvalidSchemeStart: the scheme does not start with an ASCII letter.
	InvalidSchemeStart
	// FileSchemeMissingSolidus: a file: URL is missing "//" before its
	// path or authority.
	FileSchemeMissingSolidus
	// InvalidScheme: the scheme contains a disallowed code point.
	InvalidScheme
	// MissingSchemeNonRelativeURL: no scheme was given and no base URL is
	// usable to resolve against.
	MissingSchemeNonRelativeURL
	// RelativeURLMissingSlash: a relative reference over a special-scheme
	// base is missing its leading slash.
	RelativeURLMissingSlash
	// UnexpectedReverseSolidus: a backslash appeared where WHATWG treats it
	// as a path separator for special schemes.
	UnexpectedReverseSolidus
	// MissingSolidusBeforeAuthority: "//" was expected before the authority
	// and is missing.
	MissingSolidusBeforeAuthority
	// UnexpectedAt: an unexpected '@' appeared in the authority.
	UnexpectedAt
	// CredentialsWithoutHost: userinfo was given but the host is empty.
	CredentialsWithoutHost
	// PortWithoutHost: a port was given but the host is empty.
	PortWithoutHost
	// EmptyHostSpecialScheme: the host is empty on a special scheme, which
	// requires a non-empty host.
	EmptyHostSpecialScheme
	// InvalidHost: the host parser rejected the host string.
	InvalidHost
	// PortOutOfRange: the port number exceeds 65535.
	PortOutOfRange
	// PortInvalid: the port contains a non-digit.
	PortInvalid
	// UnexpectedWindowsDriveLetter: a Windows drive letter appeared where
	// it would be misinterpreted.
	UnexpectedWindowsDriveLetter
	// UnexpectedWindowsDriveLetterAsHost: a Windows drive letter was parsed
	// as if it were a host.
	UnexpectedWindowsDriveLetterAsHost
	// UnexpectedHostFileScheme: a file: URL unexpectedly carries a host.
	UnexpectedHostFileScheme
	// EmptyPathSegmentFileScheme: a file: URL path has an empty segment
	// where one is disallowed.
	EmptyPathSegmentFileScheme
	// InvalidURLUnit: a code point outside the URL code point set appeared
	// unescaped.
	InvalidURLUnit
	// UnescapedPercentSign: a '%' was not followed by two hex digits.
	UnescapedPercentSign
	// IPv6Unclosed: an IPv6 literal is missing its closing ']'.
	IPv6Unclosed
	// IDNAFailure: converting a domain to ASCII via IDNA failed.
	IDNAFailure
	// IDNAFailureEmptyDomain: as IDNAFailure, but specifically because the
	// resulting domain would be empty.
	IDNAFailureEmptyDomain
	// ForbiddenHostCodePoint: the host contains a forbidden host code point
	// (see codepoint.IsForbiddenHostCodePoint).
	ForbiddenHostCodePoint

	// BaseURLRequired is a private code: a relative reference was given
	// with no base URL to resolve it against, distinct from
	// MissingSchemeNonRelativeURL in that it never reaches user-visible
	// validation-error reporting; it exists so internal callers can
	// distinguish "caller error" from "malformed input".
	BaseURLRequired
	// InvalidUTF8 is a private code: the input was not valid UTF-8 at some
	// position.
	InvalidUTF8
	// HostParserError wraps a nested IPv4 or IPv6 parser error. See
	// ValidationError.Wrapped.
	HostParserError
)

// DomainToASCII is an alias retained for readability at call sites that
// specifically invoke IDNA ToASCII; it carries the same meaning as
// IDNAFailure.
const DomainToASCII = IDNAFailure

// IsPrivate reports whether code is one of the codes the parser uses
// internally and never surfaces through a public validation-error callback
// in ordinary operation.
func (c Code) IsPrivate() bool {
	return c == BaseURLRequired || c == InvalidUTF8
}
