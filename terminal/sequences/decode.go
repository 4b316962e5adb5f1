package sequences

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// Encodings lists the names accepted by DecodeLegacy.
var Encodings = []string{"raw", "utf-8", "cp437", "cp850", "iso-8859-1", "windows-1252"}

// DecodeLegacy converts data from a legacy encoding to a UTF-8 string
// ready for scanning.
//
// "raw" keeps the bytes as they are; the scanner still recognizes raw C1
// bytes. "utf-8" strips a leading byte order mark. "iso-8859-1" maps bytes
// 0x80-0x9F to the C1 code points U+0080-U+009F, while the code pages map
// them to printable characters.
func DecodeLegacy(data []byte, name string) (string, error) {
	var decoder *encoding.Decoder

	switch strings.ToLower(name) {
	case "", "raw":
		return string(data), nil
	case "utf-8", "utf8":
		decoder = unicode.UTF8BOM.NewDecoder()
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1", "latin1":
		decoder = charmap.ISO8859_1.NewDecoder()
	case "windows-1252", "cp1252":
		decoder = charmap.Windows1252.NewDecoder()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(decoded), nil
}
