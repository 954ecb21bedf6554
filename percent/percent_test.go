/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import (
	"bytes"
	"testing"

	"github.com/badu/weburl/encodeset"
)

func TestFlattenScenarios(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		policy encodeset.Policy
		want   string
	}{
		{"component-comma-space", "hello, world", encodeset.Component, "hello%2C%20world"},
		{"form-encoded-plusplus", "Swift is better than C++", encodeset.FormEncoded, "Swift+is+better+than+C%2B%2B"},
		{"non-ascii-emoji", "✌️", anyEscapingNonASCII(), "%E2%9C%8C%EF%B8%8F"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NewEncoder([]byte(c.src), c.policy).Flatten()
			if string(got) != c.want {
				t.Errorf("Flatten(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

// anyEscapingNonASCII returns an encode set that escapes non-ASCII bytes;
// every catalogue set does, since Classify always percent-encodes b >= 0x80.
func anyEscapingNonASCII() encodeset.Policy { return encodeset.Component }

func TestRoundTrip(t *testing.T) {
	policy := encodeset.Component // escapes '%', satisfying the round-trip law precondition
	if !policy.ShouldEscape('%') {
		t.Fatal("precondition failed: Component must escape '%'")
	}

	inputs := []string{
		"%40 Polyester",
		"hello, world",
		"",
		"\x00\x01\x7F",
		"a/b?c#d",
	}
	for _, in := range inputs {
		encoded := NewEncoder([]byte(in), policy).Flatten()
		decoded := DecodeAll(encoded, policy)
		if string(decoded) != in {
			t.Errorf("round trip failed for %q: encoded=%q decoded=%q", in, encoded, decoded)
		}
	}
}

func TestDecodeInvalidPercentFallsBackToLiteral(t *testing.T) {
	cases := []struct{ src, want string }{
		{"%", "%"},
		{"%2", "%2"},
		{"%2G", "%2G"},
		{"%41", "A"},
	}
	for _, c := range cases {
		got := DecodeAll([]byte(c.src), encodeset.PassthroughEncodeSet)
		if string(got) != c.want {
			t.Errorf("DecodeAll(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestFormEncodedSubstitution(t *testing.T) {
	encoded := NewEncoder([]byte("a b"), encodeset.FormEncoded).Flatten()
	if string(encoded) != "a+b" {
		t.Errorf("Flatten(\"a b\") = %q, want %q", encoded, "a+b")
	}
	decoded := DecodeAll(encoded, encodeset.FormEncoded)
	if string(decoded) != "a b" {
		t.Errorf("DecodeAll(%q) = %q, want %q", encoded, decoded, "a b")
	}
}

func TestWriteBufferedMatchesFlatten(t *testing.T) {
	srcs := []string{
		"",
		"short",
		"a-pretty-long-string-with-lots-of-bytes-to-exercise-buffer-flushing-logic-%%%%",
		"\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0A\x0B\x0C\x0D\x0E\x0F",
	}
	for _, src := range srcs {
		want := NewEncoder([]byte(src), encodeset.Component).Flatten()

		var fwd bytes.Buffer
		fwdMutated := WriteBuffered([]byte(src), encodeset.Component, func(chunk []byte) {
			fwd.Write(chunk)
		})
		if fwd.String() != string(want) {
			t.Errorf("WriteBuffered(%q) = %q, want %q", src, fwd.String(), want)
		}

		var chunks [][]byte
		backMutated := WriteBufferedFromBack([]byte(src), encodeset.Component, func(chunk []byte) {
			cp := append([]byte(nil), chunk...)
			chunks = append(chunks, cp)
		})
		var back bytes.Buffer
		for i := len(chunks) - 1; i >= 0; i-- {
			back.Write(chunks[i])
		}
		if back.String() != string(want) {
			t.Errorf("WriteBufferedFromBack(%q) = %q, want %q", src, back.String(), want)
		}

		if fwdMutated != backMutated {
			t.Errorf("mutated flag mismatch for %q: forward=%v back=%v", src, fwdMutated, backMutated)
		}
	}
}
