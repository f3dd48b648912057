package clipboard

import "errors"

// ErrClipboardUnavailable is returned when the system clipboard cannot be
// opened or written.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")
