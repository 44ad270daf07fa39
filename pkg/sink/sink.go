// Package sink persists encoded files.
//
// WriteFile never leaves a half-written destination behind: bytes go to a
// temporary file in the same directory which is renamed over the target once
// complete. Writers are serialized with one advisory lock file that is reused
// by every call, so repeated runs never accumulate lock files.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileMode is the permission of files created by WriteFile.
const FileMode os.FileMode = 0o644

// WriteFile atomically replaces the file at path with data.
func WriteFile(path string, data []byte) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if fi, err := os.Stat(dir); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	} else if !fi.IsDir() {
		return fmt.Errorf("write %s: %s is not a directory", path, dir)
	}

	lock := flock.New(LockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(abs)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, FileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	committed = true
	return nil
}

// LockPath is the advisory lock shared by all writers. It is never removed:
// unlinking a lock file another process is waiting on would let two writers
// hold "the" lock at once.
func LockPath() string {
	return filepath.Join(os.TempDir(), "gogradient.lock")
}
