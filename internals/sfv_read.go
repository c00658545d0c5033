package internals

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record pairs a file path with its CRC32 checksum,
// corresponding to one line of an SFV document.
type Record struct {
	Path     string
	Checksum uint32
}

// ParseDocument parses SFV text into records in document order.
// Blank lines and comment lines starting with ';' are skipped.
// Every other line must end in an eight-digit hexadecimal checksum field;
// the rest of the line, trimmed, is the path. The split is positional, not
// whitespace-delimited, so paths may contain spaces.
func ParseDocument(r io.Reader) ([]Record, error) {
	records := make([]Record, 0, 32)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		record, ok, err := parseLine(scanner.Text(), lineno)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(`error while reading checksum document: %w`, err)
	}

	return records, nil
}

// ReadDocument parses the SFV file at path, or stdin for "-".
func ReadDocument(path string) ([]Record, error) {
	if path == "-" {
		return ParseDocument(os.Stdin)
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read file '%s': %w`, path, err)
	}
	defer fd.Close()

	records, err := ParseDocument(fd)
	if err != nil {
		return nil, fmt.Errorf(`failed to parse checksum file '%s': %w`, path, err)
	}
	return records, nil
}

// parseLine tokenizes a single document line.
// ok is false for blank and comment lines which carry no record.
// The line length is validated before slicing, so a too-short record line
// yields a *FormatError rather than an out-of-range failure.
func parseLine(line string, lineno int) (record Record, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, ";") {
		return Record{}, false, nil
	}

	if len(line) <= 8 {
		return Record{}, false, &FormatError{
			Line:   lineno,
			Reason: fmt.Sprintf(`got %d characters, but a path followed by an 8-digit checksum is required`, len(line)),
		}
	}

	pathField := strings.TrimSpace(line[:len(line)-8])
	checksumField := line[len(line)-8:]
	sum, perr := strconv.ParseUint(checksumField, 16, 32)
	if perr != nil {
		return Record{}, false, &FormatError{
			Line:   lineno,
			Reason: fmt.Sprintf(`checksum field '%s' is not hexadecimal`, checksumField),
		}
	}

	return Record{Path: pathField, Checksum: uint32(sum)}, true, nil
}
