package internals

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// ChunkSize is the number of bytes read from a file at once while hashing.
const ChunkSize = 1024 * 1024

// crc32Table uses the IEEE polynomial, i.e. the ISO-HDLC variant
// implemented by zlib/gzip and expected by SFV tools.
var crc32Table = crc32.MakeTable(crc32.IEEE)

// ChecksumFile computes the CRC32 checksum of the file at path.
// The file is streamed in chunks of ChunkSize bytes, so arbitrarily large
// files require constant memory. An empty file yields 0x00000000.
// Open and read failures are returned with the offending path attached;
// any partially accumulated state is discarded.
func ChecksumFile(path string) (uint32, error) {
	fd, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf(`failed to open file '%s': %w`, path, err)
	}
	defer fd.Close()

	h := crc32.New(crc32Table)
	buf := make([]byte, ChunkSize)
	for {
		n, err := fd.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf(`error while reading file '%s': %w`, path, err)
		}
	}

	return h.Sum32(), nil
}

// FormatChecksum renders a CRC32 value as eight uppercase hexadecimal digits.
func FormatChecksum(sum uint32) string {
	return fmt.Sprintf(`%08X`, sum)
}
