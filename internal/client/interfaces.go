// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract for runnable vikeypass front ends.
type Client interface {
	// Run opens the vault in the terminal UI and blocks until the user
	// quits.
	Run(ctx context.Context) error

	// Serve runs the loopback query endpoint until ctx is cancelled or a
	// stop signal arrives. ready is called once the listener is bound and
	// never when binding fails.
	Serve(ctx context.Context, ready func(addr, token string)) error
}
