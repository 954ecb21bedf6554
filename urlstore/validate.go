/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package urlstore

import "fmt"

// Validate checks this Structure's internal consistency and returns the
// first violation found, or nil. It gives the external parser (or a test)
// a single entry point to call before handing a Structure to a Storage,
// rather than re-deriving each check at every call site.
func (s Structure) Validate() error {
	if s.SchemeLength < 2 {
		return fmt.Errorf("urlstore: scheme length %d, want >= 2", s.SchemeLength)
	}
	if s.PasswordLength != 0 && s.PasswordLength < 2 {
		return fmt.Errorf("urlstore: password length %d, want 0 or >= 2", s.PasswordLength)
	}
	if s.PortLength != 0 && s.PortLength < 2 {
		return fmt.Errorf("urlstore: port length %d, want 0 or >= 2", s.PortLength)
	}
	hasCredsOrPort := s.HasCredentialSeparator() || s.PortLength > 0
	if hasCredsOrPort && s.Sigil != SigilAuthority {
		return fmt.Errorf("urlstore: credentials or port present but sigil is %v, want authority", s.Sigil)
	}
	if hasCredsOrPort && s.CannotHaveCredentialsOrPort() {
		return fmt.Errorf("urlstore: credentials or port present but CannotHaveCredentialsOrPort is true")
	}
	if s.Sigil == SigilPath {
		if s.PathLength < 2 {
			return fmt.Errorf("urlstore: sigil is path but path length %d, want >= 2", s.PathLength)
		}
	}
	for _, v := range []int{s.SchemeLength, s.UsernameLength, s.PasswordLength, s.HostnameLength, s.PortLength, s.PathLength, s.QueryLength, s.FragmentLength} {
		if v < 0 {
			return fmt.Errorf("urlstore: negative component length %d", v)
		}
	}
	return nil
}
