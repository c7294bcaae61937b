package model

import (
	"fmt"
	"math"
	"strconv"
)

// FlarmID is the 24-bit radio identifier of a FLARM collision-avoidance
// transponder. The wire format stores it in a 32-bit field, so values above
// MaxFlarmID can appear in damaged files.
type FlarmID uint32

// MaxFlarmID is the largest identifier that fits in 24 bits.
const MaxFlarmID FlarmID = 0xFFFFFF

// Valid reports whether the identifier fits in 24 bits.
func (id FlarmID) Valid() bool {
	return id <= MaxFlarmID
}

// String renders the canonical six-digit uppercase hex form, e.g. "3EE3C7".
func (id FlarmID) String() string {
	return fmt.Sprintf("%06X", uint32(id))
}

// ParseFlarmID parses the canonical hex form back into an identifier.
func ParseFlarmID(s string) (FlarmID, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid flarm id %q: %w", s, err)
	}
	if FlarmID(v) > MaxFlarmID {
		return 0, fmt.Errorf("invalid flarm id %q: exceeds 24 bits", s)
	}
	return FlarmID(v), nil
}

// Header carries the version counter and record count read from, or written
// to, the 12-byte file header. The magic bytes are a layout constant and are
// not stored here.
type Header struct {
	// Version is an opaque regeneration counter with no enforced semantics;
	// it only has to survive a round trip.
	Version uint32

	// RecordCount is the number of index entries and records that follow.
	RecordCount uint32
}

// Record is one aircraft entry of a FlarmNet database: a flarm id mapped to
// call sign, pilot, airfield, aircraft type, registration and radio
// frequency. Records are plain values; editing a database means copying its
// records, changing the copies and building a new database from them.
type Record struct {
	FlarmID FlarmID

	// Frequency is the radio frequency in kHz; 0 means none recorded.
	Frequency uint32

	// Reserved holds the record's reserved-region bytes when any of them
	// were nonzero at decode time. Nil means the region was zero, as it is
	// for every record built in memory. Encoding always writes zeroes.
	Reserved []byte

	CallSign  string
	PilotName string

	// Airfield in practice usually carries registration-like data; no
	// semantic validation is applied.
	Airfield string

	PlaneType    string
	Registration string
}

// HasFrequency reports whether a frequency is recorded. Zero means "unset"
// by convention, so it is representable and round-trips unchanged.
func (r Record) HasFrequency() bool {
	return r.Frequency != 0
}

// FrequencyMHz returns the frequency in MHz, e.g. 123500 kHz -> 123.5.
func (r Record) FrequencyMHz() float64 {
	return float64(r.Frequency) / 1000
}

// FormatFrequency renders the display form, e.g. 123500 -> "123.500". An
// unset frequency renders as the empty string.
func (r Record) FormatFrequency() string {
	if r.Frequency == 0 {
		return ""
	}
	return fmt.Sprintf("%d.%03d", r.Frequency/1000, r.Frequency%1000)
}

// ParseFrequency converts the display form back to kHz. The empty string
// means unset and maps to 0.
func ParseFrequency(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	mhz, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q: %w", s, err)
	}
	if mhz < 0 || mhz > math.MaxUint32/1000 {
		return 0, fmt.Errorf("invalid frequency %q: out of range", s)
	}
	return uint32(math.Round(mhz * 1000)), nil
}
