package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/peekview/logging"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

var (
	osc52Out io.Writer = os.Stdout
	osc52TTY           = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
	}

	if _, err := osc52.New(text).WriteTo(osc52Out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if name := os.Getenv("TERM"); name == "" || strings.EqualFold(name, "dumb") {
		return false
	}
	return osc52TTY()
}
