package sway

import (
	"errors"
	"os"
)

// ErrNoSocket is returned when no socket path is given and neither
// SWAYSOCK nor I3SOCK is set.
var ErrNoSocket = errors.New("no IPC socket: set SWAYSOCK or I3SOCK, or pass --socket")

// SocketPath resolves the IPC socket: explicit path first, then SWAYSOCK,
// then I3SOCK.
func SocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if p := os.Getenv(env); p != "" {
			return p, nil
		}
	}
	return "", ErrNoSocket
}
