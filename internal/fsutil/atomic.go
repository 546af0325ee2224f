package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path through a temporary file in the same
// directory followed by a rename, so readers never observe a partially
// written file. Missing parent directories are created. On any failure the
// temporary file is removed and the previous content of path is untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return WriteFilesAtomic([]string{path}, data, perm)
}

// WriteFilesAtomic writes the same data to every path. All temporary files
// are written and synced before the first rename, so a failure while
// writing leaves every destination with its previous content.
func WriteFilesAtomic(paths []string, data []byte, perm os.FileMode) error {
	type staged struct{ tmp, path string }
	var done []staged
	removeFrom := func(i int) {
		for _, s := range done[i:] {
			_ = os.Remove(s.tmp)
		}
	}

	for _, path := range paths {
		tmp, err := stage(path, data, perm)
		if err != nil {
			removeFrom(0)
			return err
		}
		done = append(done, staged{tmp: tmp, path: path})
	}

	for i, s := range done {
		if err := os.Rename(s.tmp, s.path); err != nil {
			removeFrom(i)
			return fmt.Errorf("replace %s: %w", s.path, err)
		}
		// Best effort: persist the rename itself.
		_ = syncDir(filepath.Dir(s.path))
	}
	return nil
}

// stage writes data to a synced temporary file next to path and returns
// its name.
func stage(path string, data []byte, perm os.FileMode) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return "", fmt.Errorf("create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("write %s: %w", tmpPath, err))
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail(fmt.Errorf("chmod %s: %w", tmpPath, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync %s: %w", tmpPath, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close %s: %w", tmpPath, err)
	}
	return tmpPath, nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
