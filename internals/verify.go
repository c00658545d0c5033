package internals

import (
	"path/filepath"
)

// Status classifies the verification result of a single record.
type Status int

const (
	// StatusOK means the computed checksum matches the recorded one.
	StatusOK Status = iota
	// StatusMismatch means the file hashed to a different checksum.
	StatusMismatch
	// StatusError means the checksum could not be computed at all.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMismatch:
		return "FAILED"
	case StatusError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Outcome is the verification result for a single record.
// The presentation (colors, JSON, text) is up to the caller.
type Outcome struct {
	Path     string
	Expected uint32
	Computed uint32 // unset when Status is StatusError
	Status   Status
	Err      error // set iff Status is StatusError
}

// Verify checks every record of the checksum file at sfvPath against the
// filesystem and invokes emit per record in document order. Relative record
// paths resolve against the parent directory of the canonicalized checksum
// file, so the result does not depend on the caller's working directory and
// no process state is mutated.
//
// Failures of individual records yield StatusError outcomes and the run
// continues; only the checksum file itself being unreadable, unparsable or
// impossible to canonicalize is fatal. ok reports whether every record
// verified OK.
func Verify(sfvPath string, emit func(Outcome)) (ok bool, err error) {
	records, err := ReadDocument(sfvPath)
	if err != nil {
		return false, err
	}

	// a document from stdin resolves against the working directory
	baseDir := "."
	if sfvPath != "-" {
		canonical, err := canonicalPath(sfvPath)
		if err != nil {
			return false, err
		}
		baseDir = filepath.Dir(canonical)
	}

	ok = true
	for _, record := range records {
		outcome := verifyRecord(record, baseDir)
		if outcome.Status != StatusOK {
			ok = false
		}
		emit(outcome)
	}
	return ok, nil
}

// verifyRecord hashes one recorded file and compares against the expectation.
func verifyRecord(record Record, baseDir string) Outcome {
	path := record.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	sum, err := ChecksumFile(path)
	if err != nil {
		return Outcome{Path: record.Path, Expected: record.Checksum, Status: StatusError, Err: err}
	}
	if sum != record.Checksum {
		return Outcome{Path: record.Path, Expected: record.Checksum, Computed: sum, Status: StatusMismatch}
	}
	return Outcome{Path: record.Path, Expected: record.Checksum, Computed: sum, Status: StatusOK}
}
