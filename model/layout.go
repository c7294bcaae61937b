package model

// TDB wire layout constants
//
// A TDB file is a single contiguous stream:
//
//	[4B magic][4B version][4B record count N][N*4B id index][8B padding][N*96B records]
//
// All multi-byte integers are little-endian and unsigned.

// Magic identifies a TDB file. It is a fixed byte sequence, not an integer,
// so it has no endianness of its own.
var Magic = [4]byte{0x08, 0xD5, 0x19, 0x87}

const (
	// HeaderSize covers magic, version and record count.
	HeaderSize = 12

	// IndexEntrySize is one little-endian uint32 flarm id.
	IndexEntrySize = 4

	// PaddingSize is the zero gap between the index and the record section.
	PaddingSize = 8

	// RecordSize is the fixed on-wire size of one record.
	RecordSize = 96

	// StringFieldSize is the width of a record string field: up to 15
	// payload bytes plus a NUL terminator, zero-filled to the end.
	StringFieldSize = 16

	// ReservedSize is the width of the reserved region at ReservedOffset.
	ReservedSize = 8
)

// Field offsets within a 96-byte record. The pilot name has two candidate
// positions because the format documentation is ambiguous about it; which one
// applies is an explicit codec policy choice, never a guess.
const (
	FlarmIDOffset      = 0
	FrequencyOffset    = 4
	ReservedOffset     = 8
	CallSignOffset     = 16
	AirfieldOffset     = 48
	PlaneTypeOffset    = 64
	RegistrationOffset = 80

	// PilotNameOffset32 places the pilot name at bytes 32..48, keeping the
	// uniform 16-byte field layout.
	PilotNameOffset32 = 32

	// PilotNameOffset8 places the pilot name in the 8-byte region at
	// bytes 8..16 that the other reading treats as reserved.
	PilotNameOffset8     = 8
	PilotNameOffset8Size = 8
)

// FileSize returns the total file size implied by a record count.
func FileSize(records int) int {
	return HeaderSize + records*IndexEntrySize + PaddingSize + records*RecordSize
}
