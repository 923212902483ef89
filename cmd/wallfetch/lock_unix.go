//go:build !windows

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/Wallfetch/config"
	"github.com/gofrs/flock"
)

var lockFile *flock.Flock

// lockPath is where the single-instance lock lives. The file is never removed.
var lockPath = filepath.Join(os.TempDir(), strings.ToLower(config.AppName)+".lock")

// acquireLock tries to acquire a single-instance lock (file lock on Unix).
func acquireLock() (bool, error) {
	lockFile = flock.New(lockPath)
	locked, err := lockFile.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return locked, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if lockFile != nil {
		_ = lockFile.Unlock()
		lockFile = nil
	}
}
