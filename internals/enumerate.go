package internals

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

// Enumerator resolves user-supplied paths into a flat list of regular files.
type Enumerator struct {
	// Recursive descends into subdirectories of directory arguments.
	Recursive bool
	// KeepGoing skips unreadable directories with a warning
	// instead of aborting the enumeration.
	KeepGoing bool
	// ReadDir lists the entries of one directory.
	// nil means os.ReadDir; tests replace it to control directory order.
	ReadDir func(path string) ([]os.DirEntry, error)
}

// Enumerate returns all regular files beneath the given paths.
// File arguments are included directly; directory arguments are listed and,
// with Recursive, descended into. The concatenated result over all arguments
// is sorted lexicographically, so the output does not depend on the order
// the filesystem returns directory entries in.
// A path that is neither a file nor a directory is an explicit error;
// non-regular entries discovered inside directories are skipped silently.
func (e *Enumerator) Enumerate(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf(`failed to stat '%s': %w`, path, err)
		}

		switch {
		case stat.Mode().IsRegular():
			files = append(files, path)
		case stat.IsDir():
			sub, err := e.listFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		default:
			return nil, fmt.Errorf(`'%s' is neither a file nor a directory`, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// listFiles collects the regular files inside dir, recursing per e.Recursive.
func (e *Enumerator) listFiles(dir string) ([]string, error) {
	readDir := e.ReadDir
	if readDir == nil {
		readDir = os.ReadDir
	}

	entries, err := readDir(dir)
	if err != nil {
		if e.KeepGoing {
			logrus.Warnf(`skipping directory '%s': %s`, dir, err)
			return nil, nil
		}
		return nil, fmt.Errorf(`failed to read directory '%s': %w`, dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if !e.Recursive {
				continue
			}
			sub, err := e.listFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		if entry.Type().IsRegular() {
			files = append(files, path)
		}
	}
	return files, nil
}
