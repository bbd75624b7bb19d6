package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// ExecutableMode is rwxr-xr-x
const ExecutableMode os.FileMode = 0755

// ResetDir removes path recursively and recreates it, parents included.
// The removal completes before the directory is recreated.
func ResetDir(afs afero.Fs, path string) error {
	if err := afs.RemoveAll(path); err != nil {
		return fmt.Errorf("remove directory: %w", err)
	}
	if err := EnsureDir(afs, path, 0755); err != nil {
		return err
	}
	return nil
}

// EnsureDir ensures a directory exists with the given permissions
func EnsureDir(afs afero.Fs, path string, perm os.FileMode) error {
	if err := afs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("ensure directory: %w", err)
	}
	return nil
}

// Exists checks if a path exists
func Exists(afs afero.Fs, path string) bool {
	_, err := afs.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func IsDir(afs afero.Fs, path string) bool {
	info, err := afs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsExecutable reports whether path is a regular file with any execute bit set.
// Windows has no execute bits, so any regular file qualifies there.
func IsExecutable(afs afero.Fs, path string) bool {
	info, err := afs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}

// IsNotExist reports whether err means the path is absent
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// WriteExecutable streams r into path, creating it with ExecutableMode.
// It returns only after the file has been synced and closed.
func WriteExecutable(afs afero.Fs, path string, r io.Reader) (written int64, err error) {
	f, err := afs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, ExecutableMode)
	if err != nil {
		return 0, fmt.Errorf("create executable: %w", err)
	}
	defer func() {
		if f == nil {
			return
		}
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close executable: %w", cerr)
		}
	}()

	written, err = io.Copy(f, r)
	if err != nil {
		return written, fmt.Errorf("write executable: %w", err)
	}

	if err = f.Sync(); err != nil {
		return written, fmt.Errorf("sync executable: %w", err)
	}

	cerr := f.Close()
	f = nil
	if cerr != nil {
		return written, fmt.Errorf("close executable: %w", cerr)
	}

	return written, nil
}
