package codec

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// StringField describes one fixed-width NUL-padded UTF-8 field inside a
// record: a payload of at most Width-1 bytes, a NUL terminator, zero fill to
// the end of the field. Keeping the placement in a value type localizes the
// truncation logic and makes each field independently decodable.
type StringField struct {
	Name   string
	Offset int
	Width  int
}

// Decode extracts the field value from a full record buffer. The bytes up to
// the first NUL (or the full width if there is none) must be valid UTF-8;
// anything else is a decode failure rather than a silent replacement, so
// callers can tell a corrupt file from a legitimately empty field.
func (f StringField) Decode(rec []byte) (string, error) {
	b := rec[f.Offset : f.Offset+f.Width]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s field: %w", f.Name, ErrInvalidUTF8)
	}
	return string(b), nil
}

// Encode writes the field value into a full record buffer. Values longer
// than Width-1 bytes are truncated on a code-point boundary, never through
// the middle of a multi-byte character. The destination region must already
// be zeroed; Encode only writes the payload bytes.
func (f StringField) Encode(rec []byte, s string) {
	s = TruncateString(s, f.Width-1)
	copy(rec[f.Offset:f.Offset+f.Width], s)
}

// TruncateString returns the longest prefix of s that is at most max bytes
// long and ends on a UTF-8 code-point boundary. s must be valid UTF-8.
func TruncateString(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
