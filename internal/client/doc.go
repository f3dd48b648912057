// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires configuration, the credential store, the vault file,
// the clipboard and the vault service into one runnable application, and
// runs either the terminal UI or the loopback query endpoint on top of it.
package client
