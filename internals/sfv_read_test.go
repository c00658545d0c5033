package internals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	document := `; generated for testing
; another comment

my file.txt CBF43926
other.bin   00000000
	indented.dat	414fa339
`

	records, err := ParseDocument(strings.NewReader(document))
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Path: "my file.txt", Checksum: 0xCBF43926},
		{Path: "other.bin", Checksum: 0x00000000},
		{Path: "indented.dat", Checksum: 0x414FA339},
	}, records)
}

func TestParseDocumentChecksumCaseInsensitive(t *testing.T) {
	records, err := ParseDocument(strings.NewReader("a.txt cbf43926\nb.txt CBF43926\n"))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, records[0].Checksum, records[1].Checksum)
}

func TestParseDocumentShortLineIsFatal(t *testing.T) {
	document := "; fine\ngood.txt CBF43926\nABCDEF12\n"

	_, err := ParseDocument(strings.NewReader(document))
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)
}

func TestParseDocumentNonHexChecksumIsFatal(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("file.txt GGGGGGGG\n"))
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 1, formatErr.Line)
}

func TestParseDocumentEmpty(t *testing.T) {
	records, err := ParseDocument(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument("does-not-exist.sfv")
	assert.Error(t, err)
}
