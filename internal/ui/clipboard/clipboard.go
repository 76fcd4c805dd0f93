// Package clipboard copies text to the system clipboard, falling back to
// OSC 52 so "y" still works over SSH and inside tmux.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Write copies text to the clipboard. Native tools first (pbcopy, wl-copy,
// xclip); OSC 52 via stderr when none is available.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeOSC52(text)
}

func writeOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stderr, "\x1b]52;c;%s\x07", encoded)
	return err
}
