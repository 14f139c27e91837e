// Package runlock enforces single-run execution per output root using a
// file lock, so two pipeline runs cannot write the same directory tree.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld indicates another process holds the run lock.
var ErrHeld = errors.New("output directory is locked by another run")

// Lock guards one output root.
type Lock struct {
	path string
	lock *flock.Flock
}

// New prepares a lock for the given output root. The root must exist before
// TryLock is called.
func New(outputRoot string) *Lock {
	path := filepath.Join(outputRoot, ".mason.lock")
	return &Lock{path: path, lock: flock.New(path)}
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// TryLock acquires the lock without blocking. ErrHeld is returned when
// another process owns it.
func (l *Lock) TryLock() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("prepare lock directory: %w", err)
	}
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrHeld, l.path)
	}
	return nil
}

// Release drops the lock and removes the lock file.
func (l *Lock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release run lock: %w", err)
	}
	// Best effort; a stale file does not block future TryLock calls.
	_ = os.Remove(l.path)
	return nil
}
