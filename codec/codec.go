package codec

import (
	"errors"

	"github.com/flarmnet/go-tdb/model"
)

var (
	// ErrBadMagic means the first four bytes are not the TDB magic number,
	// so the buffer is not a TDB file at all.
	ErrBadMagic = errors.New("tdb: bad magic number")

	// ErrShortBuffer means a section buffer is smaller than its fixed size.
	ErrShortBuffer = errors.New("tdb: buffer too short")

	// ErrInvalidUTF8 means a string field does not hold valid UTF-8 up to
	// its terminator. The wrapping error names the field.
	ErrInvalidUTF8 = errors.New("tdb: invalid utf-8 in string field")

	// ErrFlarmIDRange means a flarm id does not fit in 24 bits and cannot
	// be encoded.
	ErrFlarmIDRange = errors.New("tdb: flarm id exceeds 24 bits")
)

// Codec converts the sections of a TDB file between raw bytes and model
// values. A custom implementation can be supplied through the database
// options.
type Codec interface {
	// MarshalHeader returns the 12-byte header section.
	MarshalHeader(*model.Header) ([]byte, error)

	UnmarshalHeader([]byte, *model.Header) error

	// MarshalIndex returns the id index section, 4 bytes per id.
	MarshalIndex([]uint32) ([]byte, error)

	// UnmarshalIndex fills ids from the index section; the slice length
	// selects how many entries are read.
	UnmarshalIndex([]byte, []uint32) error

	// MarshalRecord returns one 96-byte record section entry.
	MarshalRecord(*model.Record) ([]byte, error)

	UnmarshalRecord([]byte, *model.Record) error
}

// OffsetPolicy selects which byte range of a record holds the pilot name.
// The format documentation is ambiguous about the field's position, so the
// choice is explicit instead of hardcoded; future evidence can flip the
// default without reshaping the codec.
type OffsetPolicy int

const (
	// Offset32 reads the pilot name from bytes 32..48, giving every string
	// field the uniform 16-byte width. This is the default.
	Offset32 OffsetPolicy = iota

	// Offset8 reads the pilot name from the 8-byte region at bytes 8..16
	// that Offset32 treats as reserved; bytes 32..48 become the reserved
	// region instead.
	Offset8
)

func (p OffsetPolicy) String() string {
	switch p {
	case Offset32:
		return "Offset32"
	case Offset8:
		return "Offset8"
	default:
		return "OffsetPolicy(unknown)"
	}
}

// pilotNameField returns the pilot name field placement under the policy.
// Unknown policy values fall back to the Offset32 layout.
func (p OffsetPolicy) pilotNameField() StringField {
	if p == Offset8 {
		return StringField{Name: "pilot_name", Offset: model.PilotNameOffset8, Width: model.PilotNameOffset8Size}
	}
	return StringField{Name: "pilot_name", Offset: model.PilotNameOffset32, Width: model.StringFieldSize}
}

// reservedRegion returns the byte range the policy leaves unassigned. It must
// be zero in a well-formed record.
func (p OffsetPolicy) reservedRegion() (offset, size int) {
	if p == Offset8 {
		return model.PilotNameOffset32, model.StringFieldSize
	}
	return model.ReservedOffset, model.ReservedSize
}
