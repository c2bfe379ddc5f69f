// Package fsync writes files atomically with optional durable flushing.
//
// WriteFile writes to a temporary file in the destination directory and
// renames it over the target, so readers see either the old or the new
// contents. With Options.Durable the data is flushed before the rename and
// the directory entry after it.
package fsync

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Options controls WriteFile.
type Options struct {
	// Durable flushes file data and the directory entry to stable storage.
	Durable bool

	// FullSync requests F_FULLFSYNC on macOS. Ignored elsewhere.
	FullSync bool
}

// DefaultOptions returns durable writes without F_FULLFSYNC.
func DefaultOptions() Options {
	return Options{Durable: true}
}

// Sync flushes f's data to disk using the platform's cheapest durable call.
func Sync(f *os.File, fullSync bool) error {
	return fdatasync(f, fullSync)
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte, perm os.FileMode, opts Options) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "fsync: create temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "fsync: write %s", tmpName)
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrapf(err, "fsync: chmod %s", tmpName)
	}
	if opts.Durable {
		if err = Sync(tmp, opts.FullSync); err != nil {
			return errors.Wrapf(err, "fsync: flush %s", tmpName)
		}
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "fsync: close %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "fsync: rename to %s", path)
	}
	if opts.Durable {
		if err = syncDir(dir); err != nil {
			return errors.Wrapf(err, "fsync: flush directory %s", dir)
		}
	}
	return nil
}
