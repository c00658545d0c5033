// Package v1 is the stable programmatic surface of the tool, so the core
// can be embedded in longer-lived processes without going through the CLI.
package v1

import (
	"io"

	"github.com/samiksome92/crc32/internals"
)

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-08-10"

// ChecksumFile computes the CRC32 checksum of the file at path.
func ChecksumFile(path string) (uint32, error) {
	return internals.ChecksumFile(path)
}

// Create runs the generation pipeline, see internals.Create.
func Create(paths []string, opts CreateOptions, emit func(Record)) (*CreateResult, error) {
	return internals.Create(paths, opts, emit)
}

// Verify runs the verification pipeline, see internals.Verify.
func Verify(sfvPath string, emit func(Outcome)) (bool, error) {
	return internals.Verify(sfvPath, emit)
}

// ParseDocument parses SFV text into records.
func ParseDocument(r io.Reader) ([]Record, error) {
	return internals.ParseDocument(r)
}

// RenderDocument renders records as SFV text.
func RenderDocument(records []Record) string {
	return internals.RenderDocument(records)
}
