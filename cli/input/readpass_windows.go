//go:build windows
// +build windows

package input

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// readSecurePassword reads the user's password with prompt from the console.
func readSecurePassword(prompt string) (string, error) {
	fmt.Fprint(os.Stdout, prompt)
	pass, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprintln(os.Stdout)
	return string(pass), nil
}
