// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// CredentialMap maps an account name to its secret. It is the decrypted
// content of the vault file.
//
// A CredentialMap is owned by whoever holds it and must not be mutated from
// more than one goroutine.
type CredentialMap map[string]string

// NewCredentialMap returns an empty, non-nil map.
func NewCredentialMap() CredentialMap {
	return make(CredentialMap)
}

// Add inserts the secret for name, overwriting any existing entry.
func (m CredentialMap) Add(name, secret string) {
	m[name] = secret
}

// Edit overwrites the secret for name only if the account already exists.
// It reports whether the map was changed; a missing account is left absent.
func (m CredentialMap) Edit(name, secret string) bool {
	if _, ok := m[name]; !ok {
		return false
	}
	m[name] = secret
	return true
}

// Delete removes name and reports whether it was present.
func (m CredentialMap) Delete(name string) bool {
	if _, ok := m[name]; !ok {
		return false
	}
	delete(m, name)
	return true
}

// Secret returns the secret stored for name.
func (m CredentialMap) Secret(name string) (string, bool) {
	s, ok := m[name]
	return s, ok
}

// Names returns the account names in lexical order.
func (m CredentialMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of m.
func (m CredentialMap) Clone() CredentialMap {
	out := make(CredentialMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into m, overwriting on conflict, and
// returns the number of entries written.
func (m CredentialMap) Merge(other CredentialMap) int {
	for k, v := range other {
		m[k] = v
	}
	return len(other)
}
