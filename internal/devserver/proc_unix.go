//go:build !windows

package devserver

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own process group so the whole tree (npx,
// node, esbuild) can be signalled at once.
func detach(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func terminate(c *exec.Cmd) error {
	return signalGroup(c, syscall.SIGTERM)
}

func kill(c *exec.Cmd) error {
	return signalGroup(c, syscall.SIGKILL)
}

func signalGroup(c *exec.Cmd, sig syscall.Signal) error {
	if err := syscall.Kill(-c.Process.Pid, sig); err != nil {
		if err == syscall.ESRCH {
			return nil
		}
		return c.Process.Signal(sig)
	}
	return nil
}
