//go:build unix

package tools

import (
	"errors"
	"syscall"
)

// isProcessRunning probes pid with signal 0. EPERM means the process
// exists but belongs to someone else, which still holds the lock.
func isProcessRunning(pid int) bool {
	err := syscall.Kill(pid, syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
