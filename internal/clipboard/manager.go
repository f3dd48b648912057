// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/vikeypass/internal/logger"
)

// exposure is one secret placed on the clipboard and its pending clear.
type exposure struct {
	token   uint64
	timer   *time.Timer
	cleared bool
	done    chan struct{}
	once    sync.Once
}

func (e *exposure) finish() {
	e.once.Do(func() { close(e.done) })
}

// Manager is the default [Exposer]. Every Expose bumps a sequence token; a
// scheduled clear only touches the clipboard while its token is current.
type Manager struct {
	board Board
	seq   atomic.Uint64

	// mu serializes clipboard writes so a clear cannot interleave with a
	// newer Expose.
	mu      sync.Mutex
	current *exposure

	logger *logger.Logger
}

// NewManager returns a Manager writing to board.
func NewManager(board Board, log *logger.Logger) *Manager {
	return &Manager{
		board:  board,
		logger: log,
	}
}

// Expose implements [Exposer].
func (m *Manager) Expose(secret string, window time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.board.WriteAll(secret); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}

	e := &exposure{
		token: m.seq.Add(1),
		done:  make(chan struct{}),
	}
	if prev := m.current; prev != nil && !prev.cleared {
		m.logger.Debug().Uint64("token", prev.token).Msg("pending clipboard clear superseded")
	}
	m.current = e
	e.timer = time.AfterFunc(window, func() { m.clear(e) })

	m.logger.Debug().Uint64("token", e.token).Dur("window", window).Msg("secret exposed on clipboard")
	return nil
}

func (m *Manager) clear(e *exposure) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer e.finish()

	if m.seq.Load() != e.token {
		return
	}
	if err := m.board.WriteAll(""); err != nil {
		m.logger.Error().Err(err).Uint64("token", e.token).Msg("clipboard clear failed")
		return
	}
	e.cleared = true
	m.logger.Debug().Uint64("token", e.token).Msg("clipboard cleared")
}

// Flush implements [Exposer].
func (m *Manager) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.current
	if e == nil || e.cleared || m.seq.Load() != e.token {
		return nil
	}

	// invalidates the pending clear
	m.seq.Add(1)
	e.timer.Stop()
	defer e.finish()

	if err := m.board.WriteAll(""); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	e.cleared = true
	m.logger.Debug().Uint64("token", e.token).Msg("clipboard flushed")
	return nil
}

// Wait implements [Exposer].
func (m *Manager) Wait() {
	m.mu.Lock()
	e := m.current
	m.mu.Unlock()

	if e != nil {
		<-e.done
	}
}

// Live reports whether a secret is on the clipboard awaiting its clear.
func (m *Manager) Live() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current != nil && !m.current.cleared && m.seq.Load() == m.current.token
}
