package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemBoard is the OS clipboard via atotto/clipboard (pbcopy, xclip/xsel
// or wl-clipboard, Windows API).
type SystemBoard struct{}

// WriteAll implements [Board].
func (SystemBoard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// ReadAll returns the current clipboard text.
func (SystemBoard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("no clipboard utility found")
	}
	return clipboard.ReadAll()
}
