//go:build fuzz
// +build fuzz

package codec

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzTruncateString checks the boundary-safety contract: the result is
// valid UTF-8, a prefix of the input and never longer than max bytes.
func FuzzTruncateString(f *testing.F) {
	f.Add("", 15)
	f.Add("0123456789ABCDEF", 15)
	f.Add("01234567890123Ä", 15)
	f.Add("🔥🔥🔥🔥", 15)
	f.Add("Mustermann", 7)

	f.Fuzz(func(t *testing.T, s string, max int) {
		if max > 1<<10 || len(s) > 1<<12 {
			t.Skip("input too large")
		}
		if !utf8.ValidString(s) {
			t.Skip("input not utf-8")
		}

		got := TruncateString(s, max)
		if max >= 0 && len(got) > max {
			t.Errorf("len %d exceeds max %d", len(got), max)
		}
		if !utf8.ValidString(got) {
			t.Errorf("result not valid utf-8: %q", got)
		}
		if !strings.HasPrefix(s, got) {
			t.Errorf("%q is not a prefix of %q", got, s)
		}
	})
}

// FuzzStringFieldRoundTrip checks that any valid string survives an
// encode/decode cycle as a prefix of itself.
func FuzzStringFieldRoundTrip(f *testing.F) {
	f.Add("SG")
	f.Add("0123456789ABCDEF")
	f.Add("Jürgen Müller")
	f.Add("")

	field := StringField{Name: "call_sign", Offset: 0, Width: 16}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) || strings.ContainsRune(s, 0) || len(s) > 1<<10 {
			t.Skip()
		}

		rec := make([]byte, field.Width)
		field.Encode(rec, s)
		got, err := field.Decode(rec)
		if err != nil {
			t.Fatalf("decode failed for %q: %v", s, err)
		}
		if !strings.HasPrefix(s, got) {
			t.Errorf("decoded %q is not a prefix of %q", got, s)
		}
		if len(got) > field.Width-1 {
			t.Errorf("decoded %q longer than %d bytes", got, field.Width-1)
		}
	})
}
