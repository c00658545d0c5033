package internals

import (
	"fmt"
	"os"
	"strings"
)

// RenderDocument renders records as SFV text, one newline-terminated
// `<path> <checksum>` line per record, in the given order.
// No header and no trailing comments are emitted.
func RenderDocument(records []Record) string {
	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(record.Path)
		sb.WriteByte(' ')
		sb.WriteString(FormatChecksum(record.Checksum))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteDocument writes the rendered document to path, or stdout for "-".
func WriteDocument(path string, records []Record) error {
	if path == "-" {
		_, err := os.Stdout.WriteString(RenderDocument(records))
		return err
	}

	if err := os.WriteFile(path, []byte(RenderDocument(records)), 0644); err != nil {
		return fmt.Errorf(`failed to write checksum file '%s': %w`, path, err)
	}
	return nil
}
