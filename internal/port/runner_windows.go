//go:build windows

package port

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// configureCmd keeps netstat and taskkill from opening a console window when
// portkill itself runs without one.
func configureCmd(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
