package input

import (
	"io"

	"golang.org/x/term"
)

// Terminal is a terminal used for input. If `nil`, the controlling terminal
// of the process is used.
var Terminal *term.Terminal

// ReadWriter combines reader and writer.
type ReadWriter struct {
	io.Reader
	io.Writer
}

// ReadPassword reads user password (or any other secret, like a WIF key)
// with prompt without echoing it.
func ReadPassword(prompt string) (string, error) {
	if Terminal != nil {
		return Terminal.ReadPassword(prompt)
	}
	return readSecurePassword(prompt)
}
