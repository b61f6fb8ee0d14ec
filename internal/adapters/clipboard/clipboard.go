package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/kamal-hamza/haste-cli/internal/core/ports"
)

// System writes to the operating system clipboard
type System struct{}

var _ ports.Clipboard = System{}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend was found
func Available() bool {
	return !clipboard.Unsupported
}
