package clipboard

import (
	"github.com/andareed/peekview/logging"
	"github.com/atotto/clipboard"
)

// systemCopy is swapped out in tests.
var systemCopy = clipboard.WriteAll

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// when no clipboard utility is available (e.g. over ssh).
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := systemCopy(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system copy failed: %v", err)
	}
	return copyOSC52(text)
}
