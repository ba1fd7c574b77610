//go:build windows

package todo

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// acquireLock locks the whole file with LockFileEx.
func acquireLock(lockFile *os.File) error {
	var overlapped windows.Overlapped
	err := windows.LockFileEx(
		windows.Handle(lockFile.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK,
		0,
		0xFFFFFFFF,
		0xFFFFFFFF,
		&overlapped,
	)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	return nil
}

// releaseLock releases the lock taken by acquireLock.
func releaseLock(lockFile *os.File) error {
	var overlapped windows.Overlapped
	err := windows.UnlockFileEx(
		windows.Handle(lockFile.Fd()),
		0,
		0xFFFFFFFF,
		0xFFFFFFFF,
		&overlapped,
	)
	if err != nil {
		return fmt.Errorf("failed to unlock file: %w", err)
	}
	return nil
}
