package document

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pdf"
)

// result returns the assembled page text, NFC-normalized.
func (t *textAssembler) result() string {
	return norm.NFC.String(strings.TrimRight(t.b.String(), "\n"))
}

var utf16Decoder = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// decodeTextString decodes a string operand from a text-show operator.
//
// This is a structural best-effort decode, not a rendering-accurate one:
// UTF-16BE strings (BOM-marked) are decoded properly, everything else is
// treated as a single-byte Latin text encoding. Strings encoded through
// font-specific code maps come out garbled, which is acceptable for
// signal counting and bulk statistics.
func decodeTextString(s pdf.String) string {
	b := []byte(s)
	if len(b) >= 2 && b[0] == 0xfe && b[1] == 0xff {
		if out, err := utf16Decoder.NewDecoder().Bytes(b); err == nil {
			return string(out)
		}
	}

	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
