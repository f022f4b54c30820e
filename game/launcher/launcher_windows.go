//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

// setupProcessAttributes hides the console window of the detached game
// process on Windows.
func setupProcessAttributes(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: 0x08000000, // CREATE_NO_WINDOW
	}
}
