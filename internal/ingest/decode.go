package ingest

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText decodes statement bytes into a string, trying UTF-8, then
// Windows-1252, then ISO-8859-1, and finally a lossy UTF-8 replacement
// decode. Text decoding never hard-fails: UK bank exports mix encodings
// freely and a few mangled characters beat a rejected upload.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if text, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return string(text)
	}
	// Windows-1252 decoding maps its undefined bytes to U+FFFD instead of
	// erroring, so the branches below only run if the decoder set changes.
	if text, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return string(text)
	}
	// Lossy last resort: invalid sequences become U+FFFD
	return string([]rune(string(data)))
}
