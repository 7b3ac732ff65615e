package driver

import (
	"os"
	"path/filepath"
)

// writeAtomic replaces path with data via a temp file in the same
// directory. The original file mode is kept.
func writeAtomic(path string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".jsstyle-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp) //nolint:errcheck
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close() //nolint:errcheck
		return err
	}
	if err = f.Chmod(mode); err != nil {
		_ = f.Close() //nolint:errcheck
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, path)
}
