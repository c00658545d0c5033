package internals

import "fmt"

// FormatError reports a malformed record line in a checksum document.
// It is fatal: a document containing such a line cannot be verified.
type FormatError struct {
	Line   int // 1-based line number within the document
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(`malformed checksum line %d: %s`, e.Line, e.Reason)
}
