package internals

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// CreateOptions configures a generation run.
type CreateOptions struct {
	// Recursive descends into subdirectories of directory arguments.
	Recursive bool
	// KeepGoing continues past files that cannot be hashed and collects
	// their errors instead of aborting the run.
	KeepGoing bool
	// OutFile receives the rendered document after all files are processed.
	// Empty means no output file is written.
	OutFile string
	// ReadDir overrides directory listing, see Enumerator.ReadDir.
	ReadDir func(path string) ([]os.DirEntry, error)
}

// CreateResult is the aggregate of a generation run.
type CreateResult struct {
	// Records holds all successfully computed records in enumeration order.
	Records []Record
	// Failed aggregates the per-file errors of a keep-going run.
	// nil when every file was hashed.
	Failed error
}

// Create enumerates the given paths, computes a CRC32 record per file and
// invokes emit for each record as soon as it is computed, interleaved with
// the hashing. Paths are canonicalized and re-expressed relative to the
// current working directory where possible.
//
// By default the first failure aborts the run and no output file is
// written. With KeepGoing, failures are collected into Result.Failed and
// the output file contains the successful records.
func Create(paths []string, opts CreateOptions, emit func(Record)) (*CreateResult, error) {
	enum := Enumerator{Recursive: opts.Recursive, KeepGoing: opts.KeepGoing, ReadDir: opts.ReadDir}
	files, err := enum.Enumerate(paths)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf(`failed to get current directory: %w`, err)
	}
	if canonical, err := filepath.EvalSymlinks(cwd); err == nil {
		cwd = canonical
	}

	result := &CreateResult{Records: make([]Record, 0, len(files))}
	var failed *multierror.Error
	for _, file := range files {
		record, err := checksumRecord(file, cwd)
		if err != nil {
			if opts.KeepGoing {
				failed = multierror.Append(failed, err)
				continue
			}
			return nil, err
		}
		result.Records = append(result.Records, record)
		emit(record)
	}
	result.Failed = failed.ErrorOrNil()

	if opts.OutFile != "" {
		if err := WriteDocument(opts.OutFile, result.Records); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// checksumRecord hashes a single file and derives its recorded path
// relative to base where the file lies beneath it.
func checksumRecord(path, base string) (Record, error) {
	sum, err := ChecksumFile(path)
	if err != nil {
		return Record{}, err
	}

	canonical, err := canonicalPath(path)
	if err != nil {
		return Record{}, err
	}

	return Record{Path: relativeTo(base, canonical), Checksum: sum}, nil
}

// canonicalPath resolves path to its absolute, symlink-free form.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf(`failed to get canonical path for '%s': %w`, path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf(`failed to get canonical path for '%s': %w`, path, err)
	}
	return canonical, nil
}

// relativeTo re-expresses canonical relative to base.
// Paths outside the base tree keep their canonical absolute form.
func relativeTo(base, canonical string) string {
	rel, err := filepath.Rel(base, canonical)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return canonical
	}
	return rel
}
