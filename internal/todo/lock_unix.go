//go:build unix

package todo

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// acquireLock acquires an exclusive lock on the given file.
func acquireLock(lockFile *os.File) error {
	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	return nil
}

// releaseLock releases the lock on the given file.
func releaseLock(lockFile *os.File) error {
	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_UN); err != nil {
		return fmt.Errorf("failed to unlock file: %w", err)
	}
	return nil
}
