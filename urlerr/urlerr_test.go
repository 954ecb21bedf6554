/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlerr

import (
	"errors"
	"testing"
)

func TestIgnoreDiscardsEverything(t *testing.T) {
	var cb Ignore
	cb.ValidationError(New(InvalidHost))
	cb.IPv4Error(errors.New("bad ipv4"))
	cb.IPv6Error(errors.New("bad ipv6"))
	// No observable state; this test only asserts Ignore satisfies Callback
	// and never panics.
	var _ Callback = cb
}

func TestLastOnlyKeepsMostRecent(t *testing.T) {
	cb := &LastOnly{}
	cb.ValidationError(New(InvalidHost))
	cb.ValidationError(New(PortOutOfRange))
	if cb.Last.Code != PortOutOfRange {
		t.Errorf("Last.Code = %v, want %v", cb.Last.Code, PortOutOfRange)
	}
	if !cb.Seen {
		t.Error("Seen = false, want true")
	}
}

func TestCollectAllAppendsInOrder(t *testing.T) {
	cb := NewCollectAll()
	if cap(cb.Errors) < 8 {
		t.Errorf("cap(Errors) = %d, want >= 8", cap(cb.Errors))
	}
	cb.ValidationError(New(InvalidHost))
	cb.ValidationError(New(PortOutOfRange))
	cb.IPv4Error(errors.New("boom"))

	if len(cb.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(cb.Errors))
	}
	if cb.Errors[0].Code != InvalidHost || cb.Errors[1].Code != PortOutOfRange {
		t.Errorf("unexpected order: %+v", cb.Errors)
	}
	if cb.Errors[2].Code != HostParserError {
		t.Errorf("IPv4Error did not lift into HostParserError: %+v", cb.Errors[2])
	}
}

func TestValidationErrorEqual(t *testing.T) {
	a := New(InvalidHost)
	b := New(InvalidHost)
	if !a.Equal(b) {
		t.Error("two identical plain codes should be equal")
	}

	w1 := Wrap(errors.New("same text"))
	w2 := Wrap(errors.New("same text"))
	if !w1.Equal(w2) {
		t.Error("wrapped errors with identical text should be equal")
	}

	w3 := Wrap(errors.New("different text"))
	if w1.Equal(w3) {
		t.Error("wrapped errors with different text should not be equal")
	}

	if a.Equal(w1) {
		t.Error("a code with no wrapped error should not equal one that has one")
	}
}

func TestDomainToASCIIError(t *testing.T) {
	ascii, failed, _ := DomainToASCIIError("example.com")
	if failed {
		t.Fatalf("DomainToASCIIError(\"example.com\") unexpectedly failed")
	}
	if ascii != "example.com" {
		t.Errorf("ascii = %q, want %q", ascii, "example.com")
	}

	_, failed, verr := DomainToASCIIError("xn--\x00bad")
	if !failed {
		t.Fatal("DomainToASCIIError with an invalid label should fail")
	}
	if verr.Code != IDNAFailure && verr.Code != IDNAFailureEmptyDomain {
		t.Errorf("verr.Code = %v, want IDNAFailure or IDNAFailureEmptyDomain", verr.Code)
	}
}
