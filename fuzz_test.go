//go:build fuzz
// +build fuzz

package tdb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flarmnet/go-tdb/model"
)

// FuzzParse checks that arbitrary input never panics and that anything
// that loads can be written back out and reparsed into the same
// canonical form.
func FuzzParse(f *testing.F) {
	seed, err := New(1, []model.Record{
		{FlarmID: 0x3EE3C7, Frequency: 123500, CallSign: "SG", Airfield: "EDKA", PlaneType: "LS6a", Registration: "D-0816"},
		{FlarmID: 0xFFFFFF, CallSign: "7L"},
	}).Serialize()
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x08, 0xD5, 0x19, 0x87})
	f.Add(make([]byte, 20))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<20 {
			t.Skip("input too large")
		}

		db, err := Parse(data)
		if err != nil {
			return
		}

		out, err := db.Serialize()
		if err != nil {
			// an out-of-range id is the only thing that can stop a
			// loaded database from encoding again
			if !errors.Is(err, ErrFlarmIDRange) {
				t.Fatalf("serialize failed: %v", err)
			}
			return
		}

		again, err := Parse(out)
		if err != nil {
			t.Fatalf("reparse of serialized output failed: %v", err)
		}
		if len(again.Warnings()) != 0 {
			t.Errorf("serialized output produced warnings: %v", again.Warnings())
		}

		// serialization is canonical, so a second cycle is a fixed point
		out2, err := again.Serialize()
		if err != nil {
			t.Fatalf("second serialize failed: %v", err)
		}
		if !bytes.Equal(out, out2) {
			t.Errorf("canonical form is not stable across a reparse")
		}
	})
}
