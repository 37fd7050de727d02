package main

import (
	"github.com/mj1618/autotiling/cmd"

	// Registers the sway/i3 IPC backend.
	_ "github.com/mj1618/autotiling/internal/platform/sway"
)

func main() {
	cmd.Execute()
}
