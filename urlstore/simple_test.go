/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlstore

import (
	"testing"

	"github.com/badu/weburl/encodeset"
	"github.com/badu/weburl/percent"
)

// percentEncoder adapts percent.WriteBuffered to the ComponentEncoder shape,
// the way a real setter would wire the percent-encoding engine into
// SetSimpleComponent.
func percentEncoder(policy encodeset.Policy) ComponentEncoder {
	return func(value []byte, _ SchemeKind, emit func(chunk []byte)) bool {
		return percent.WriteBuffered(value, policy, emit)
	}
}

func TestSetSimpleComponentInsertsFragment(t *testing.T) {
	structure := Structure{SchemeLength: 2}
	storage := New(structure, []byte("a:"))

	newValue := []byte("a b") // space must be percent-encoded under Fragment

	result := storage.SetSimpleComponent(Fragment, newValue, '#', structure, percentEncoder(encodeset.Fragment))

	want := "a:#a%20b"
	if got := result.EntireString(); got != want {
		t.Errorf("EntireString() = %q, want %q", got, want)
	}
	got, ok := result.Component(Fragment)
	if !ok || string(got) != "#a%20b" {
		t.Errorf("Component(Fragment) = (%q, %v), want (%q, true)", got, ok, "#a%20b")
	}
}

func TestSetSimpleComponentNoEscapingNeeded(t *testing.T) {
	structure := Structure{SchemeLength: 2, HostnameLength: 1, Sigil: SigilAuthority}
	storage := New(structure, []byte("a://h"))

	newValue := []byte("8080")

	result := storage.SetSimpleComponent(Port, newValue, ':', structure, percentEncoder(encodeset.Component))

	want := "a://h:8080"
	if got := result.EntireString(); got != want {
		t.Errorf("EntireString() = %q, want %q", got, want)
	}
	got, ok := result.Component(Port)
	if !ok || string(got) != ":8080" {
		t.Errorf("Component(Port) = (%q, %v), want (%q, true)", got, ok, ":8080")
	}
}

func TestSetSimpleComponentIgnoresStaleLengthInBase(t *testing.T) {
	structure := Structure{SchemeLength: 2, QueryLength: len("?stale")}
	storage := New(structure, []byte("a:?stale"))

	result := storage.SetSimpleComponent(Query, []byte("ab"), '?', structure, percentEncoder(encodeset.Component))

	want := "a:?ab"
	if got := result.EntireString(); got != want {
		t.Errorf("EntireString() = %q, want %q", got, want)
	}
	if got := result.Structure().QueryLength; got != len("?ab") {
		t.Errorf("QueryLength = %d, want %d", got, len("?ab"))
	}
}

func TestRemoveSimpleComponent(t *testing.T) {
	structure := Structure{SchemeLength: 2, QueryLength: len("?a=1")}
	storage := New(structure, []byte("a:?a=1"))

	newStructure := structure
	newStructure.QueryLength = 0
	result := storage.RemoveSimpleComponent(Query, newStructure)

	if got := result.EntireString(); got != "a:" {
		t.Errorf("EntireString() = %q, want %q", got, "a:")
	}
	if _, ok := result.Component(Query); ok {
		t.Error("Component(Query) present after removal")
	}
}

func TestRemoveSimpleComponentNoOpWhenAbsent(t *testing.T) {
	structure := Structure{SchemeLength: 2}
	storage := New(structure, []byte("a:"))
	result := storage.RemoveSimpleComponent(Fragment, structure)
	if got := result.EntireString(); got != "a:" {
		t.Errorf("EntireString() = %q, want %q", got, "a:")
	}
}
