package tui

import "errors"

// ErrUserQuit reports that the user left the program on purpose, as
// opposed to the TUI terminating with a failure.
var ErrUserQuit = errors.New("keluar dari program")
