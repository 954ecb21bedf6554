/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlerr

import "fmt"

// ValidationError is a compact value: a code plus an optional wrapped
// error from a nested IPv4/IPv6 host parser (only meaningful when Code is
// HostParserError).
type ValidationError struct {
	Code    Code
	Wrapped error
}

// New returns a ValidationError with no wrapped detail.
func New(code Code) ValidationError {
	return ValidationError{Code: code}
}

// Wrap returns a HostParserError ValidationError wrapping err, the way a
// nested IPv4 or IPv6 parser error is lifted into this vocabulary.
func Wrap(err error) ValidationError {
	return ValidationError{Code: HostParserError, Wrapped: err}
}

func (e ValidationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Wrapped)
	}
	return e.Code.String()
}

// Equal compares two ValidationErrors componentwise: by Code, and by
// Wrapped when either side carries a wrapped error. Two errors with the
// same code and no wrapped detail are equal regardless of identity. This
// resolves the open question in the design notes about hostParserError
// equality: it is (code, wrapped), not code alone.
func (e ValidationError) Equal(other ValidationError) bool {
	if e.Code != other.Code {
		return false
	}
	if (e.Wrapped == nil) != (other.Wrapped == nil) {
		return false
	}
	if e.Wrapped == nil {
		return true
	}
	return e.Wrapped.Error() == other.Wrapped.Error()
}

// String renders a Code's name for diagnostics. Unknown codes render as
// "Code(N)" rather than panicking.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

var codeNames = map[Code]string{
	UnexpectedC0OrSpace:                "unexpected-c0-control-or-space",
	ASCIITabOrNewline:                  "ascii-tab-or-newline",
	InvalidSchemeStart:                 "invalid-scheme-start",
	FileSchemeMissingSolidus:           "file-scheme-missing-solidus",
	InvalidScheme:                      "invalid-scheme",
	MissingSchemeNonRelativeURL:        "missing-scheme-non-relative-url",
	RelativeURLMissingSlash:            "relative-url-missing-slash",
	UnexpectedReverseSolidus:           "unexpected-reverse-solidus",
	MissingSolidusBeforeAuthority:      "missing-solidus-before-authority",
	UnexpectedAt:                       "unexpected-at",
	CredentialsWithoutHost:             "credentials-without-host",
	PortWithoutHost:                    "port-without-host",
	EmptyHostSpecialScheme:             "empty-host-special-scheme",
	InvalidHost:                        "invalid-host",
	PortOutOfRange:                     "port-out-of-range",
	PortInvalid:                        "port-invalid",
	UnexpectedWindowsDriveLetter:       "unexpected-windows-drive-letter",
	UnexpectedWindowsDriveLetterAsHost: "unexpected-windows-drive-letter-as-host",
	UnexpectedHostFileScheme:           "unexpected-host-file-scheme",
	EmptyPathSegmentFileScheme:         "empty-path-segment-file-scheme",
	InvalidURLUnit:                     "invalid-url-unit",
	UnescapedPercentSign:               "unescaped-percent-sign",
	IPv6Unclosed:                       "ipv6-unclosed",
	IDNAFailure:                        "idna-failure",
	IDNAFailureEmptyDomain:             "idna-failure-empty-domain",
	ForbiddenHostCodePoint:             "forbidden-host-code-point",
	BaseURLRequired:                    "base-url-required",
	InvalidUTF8:                        "invalid-utf8",
	HostParserError:                    "host-parser-error",
}
