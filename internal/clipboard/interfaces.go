package clipboard

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Board is the system clipboard text slot.
type Board interface {
	WriteAll(text string) error
}

// Exposer places secrets on the clipboard for a bounded time.
type Exposer interface {
	// Expose writes secret to the clipboard before returning and arranges
	// for the clipboard to be overwritten with an empty string once window
	// has elapsed. A later Expose supersedes the pending clear of an earlier
	// one. Returns [ErrClipboardUnavailable] if the clipboard cannot be
	// written; nothing is scheduled in that case.
	Expose(secret string, window time.Duration) error

	// Flush clears the clipboard immediately if an exposure is still live.
	Flush() error

	// Wait blocks until the most recent exposure has been cleared or
	// superseded.
	Wait()
}
