/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlerr

import "golang.org/x/net/idna"

// idnaProfile matches the WHATWG URL Standard's domain-to-ASCII algorithm
// closely enough for validation-error classification: it is lenient about
// already-ASCII labels (CheckHyphens/CheckJoiners disabled would be a
// parser policy decision, out of scope here) and transitional mappings are
// left to the host parser that owns the actual conversion.
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.VerifyDNSLength(false),
)

// DomainToASCIIError runs the IDNA ToASCII algorithm over domain and, on
// failure, returns the ValidationError the host parser (this core's
// external collaborator) should report: IDNAFailureEmptyDomain when the
// resulting label set is empty, IDNAFailure otherwise. It returns
// (ascii, false, ValidationError{}) on success. The core performs no host
// parsing of its own, so this helper only classifies the outcome for the
// caller; it does not decide whether the caller should use the result.
func DomainToASCIIError(domain string) (ascii string, failed bool, verr ValidationError) {
	ascii, err := idnaProfile.ToASCII(domain)
	if err == nil {
		return ascii, false, ValidationError{}
	}
	if ascii == "" {
		return "", true, ValidationError{Code: IDNAFailureEmptyDomain, Wrapped: err}
	}
	return ascii, true, ValidationError{Code: IDNAFailure, Wrapped: err}
}
