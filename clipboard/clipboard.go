// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/andareed/siftly-timelines/logging"
	"github.com/atotto/clipboard"
)

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// Copy writes text to the system clipboard, falling back to an OSC52
// escape sequence when no clipboard utility is available (e.g. over ssh).
func Copy(text string) error {
	err := writeAll(text)
	if err == nil {
		logging.Infof("Clipboard: copied %d bytes", len(text))
		return nil
	}
	logging.Warnf("Clipboard: system clipboard failed: %v", err)
	if oscErr := copyOSC52(text); oscErr != nil {
		return fmt.Errorf("copy to clipboard: %w", oscErr)
	}
	return nil
}
