// Package proc manages the detached waiter processes that outlive the
// invoking command. A waiter is identified by its PID, which is recorded in
// the log file so a later, unrelated invocation can terminate it.
package proc

import (
	"os"
	"os/exec"
	"syscall"
)

// Detach starts the current executable with the given arguments as a
// session-leader child whose lifetime is independent of this process, and
// returns its PID. Standard streams point at the null device; the child is
// released immediately and never waited on.
func Detach(args ...string) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, err
	}
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer devnull.Close()

	cmd := exec.Command(exe, args...)
	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, err
	}
	return pid, nil
}

// Terminate sends SIGTERM to pid. Failure is ignored: the waiter may have
// fired and exited already, and the caller removes the record either way.
func Terminate(pid int) {
	if pid <= 0 {
		return
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return
	}
	_ = p.Signal(syscall.SIGTERM)
}
