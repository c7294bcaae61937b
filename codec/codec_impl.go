package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/flarmnet/go-tdb/model"
)

/*
default codec:
	- header: magic(4) + version(4, u32le) + record count(4, u32le)
	- index: one u32le flarm id per record, ascending
	- record (96 bytes, Offset32 policy):
	  flarm id(4, u32le) | frequency kHz(4, u32le) | reserved(8, zero) |
	  call_sign(16) | pilot_name(16) | airfield(16) | plane_type(16) | registration(16)
	under Offset8 the pilot name sits in bytes 8..16 instead and bytes 32..48
	are the reserved region
*/

// The four string fields every policy places identically.
var (
	callSignField     = StringField{Name: "call_sign", Offset: model.CallSignOffset, Width: model.StringFieldSize}
	airfieldField     = StringField{Name: "airfield", Offset: model.AirfieldOffset, Width: model.StringFieldSize}
	planeTypeField    = StringField{Name: "plane_type", Offset: model.PlaneTypeOffset, Width: model.StringFieldSize}
	registrationField = StringField{Name: "registration", Offset: model.RegistrationOffset, Width: model.StringFieldSize}
)

// RecordCodec is the default Codec. The zero value uses the Offset32 policy.
type RecordCodec struct {
	policy OffsetPolicy
}

var _ Codec = (*RecordCodec)(nil)

func NewRecordCodec(policy OffsetPolicy) *RecordCodec {
	return &RecordCodec{policy: policy}
}

// Policy returns the offset policy the codec decodes and encodes with.
func (c *RecordCodec) Policy() OffsetPolicy {
	return c.policy
}

// MarshalHeader returns the 12-byte header section.
func (c *RecordCodec) MarshalHeader(header *model.Header) ([]byte, error) {
	data := make([]byte, model.HeaderSize)
	copy(data, model.Magic[:])
	binary.LittleEndian.PutUint32(data[4:], header.Version)
	binary.LittleEndian.PutUint32(data[8:], header.RecordCount)
	return data, nil
}

func (c *RecordCodec) UnmarshalHeader(data []byte, header *model.Header) error {
	if len(data) < model.HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", ErrShortBuffer, model.HeaderSize, len(data))
	}
	if !bytes.Equal(data[:4], model.Magic[:]) {
		return fmt.Errorf("%w: % x", ErrBadMagic, data[:4])
	}
	header.Version = binary.LittleEndian.Uint32(data[4:8])
	header.RecordCount = binary.LittleEndian.Uint32(data[8:12])
	return nil
}

// MarshalIndex returns the id index section, 4 bytes per id, in slice order.
func (c *RecordCodec) MarshalIndex(ids []uint32) ([]byte, error) {
	data := make([]byte, len(ids)*model.IndexEntrySize)
	for i, id := range ids {
		binary.LittleEndian.PutUint32(data[i*model.IndexEntrySize:], id)
	}
	return data, nil
}

func (c *RecordCodec) UnmarshalIndex(data []byte, ids []uint32) error {
	if need := len(ids) * model.IndexEntrySize; len(data) < need {
		return fmt.Errorf("%w: index needs %d bytes, have %d", ErrShortBuffer, need, len(data))
	}
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint32(data[i*model.IndexEntrySize:])
	}
	return nil
}

// MarshalRecord returns one 96-byte record section entry. The reserved
// region is always written as zeroes, whatever the record was decoded with.
func (c *RecordCodec) MarshalRecord(record *model.Record) ([]byte, error) {
	if !record.FlarmID.Valid() {
		return nil, fmt.Errorf("%w: %08X", ErrFlarmIDRange, uint32(record.FlarmID))
	}

	data := make([]byte, model.RecordSize)
	binary.LittleEndian.PutUint32(data[model.FlarmIDOffset:], uint32(record.FlarmID))
	binary.LittleEndian.PutUint32(data[model.FrequencyOffset:], record.Frequency)

	fields := []struct {
		field StringField
		value string
	}{
		{callSignField, record.CallSign},
		{c.policy.pilotNameField(), record.PilotName},
		{airfieldField, record.Airfield},
		{planeTypeField, record.PlaneType},
		{registrationField, record.Registration},
	}
	for _, fv := range fields {
		if !utf8.ValidString(fv.value) {
			return nil, fmt.Errorf("%s field: %w", fv.field.Name, ErrInvalidUTF8)
		}
		fv.field.Encode(data, fv.value)
	}
	return data, nil
}

func (c *RecordCodec) UnmarshalRecord(data []byte, record *model.Record) error {
	if len(data) < model.RecordSize {
		return fmt.Errorf("%w: record needs %d bytes, have %d", ErrShortBuffer, model.RecordSize, len(data))
	}

	record.FlarmID = model.FlarmID(binary.LittleEndian.Uint32(data[model.FlarmIDOffset:]))
	record.Frequency = binary.LittleEndian.Uint32(data[model.FrequencyOffset:])

	// The reserved region is kept as read so the validator can flag nonzero
	// bytes; nil means it was clean.
	record.Reserved = nil
	off, size := c.policy.reservedRegion()
	if reserved := data[off : off+size]; !isZero(reserved) {
		record.Reserved = append([]byte(nil), reserved...)
	}

	var err error
	if record.CallSign, err = callSignField.Decode(data); err != nil {
		return err
	}
	if record.PilotName, err = c.policy.pilotNameField().Decode(data); err != nil {
		return err
	}
	if record.Airfield, err = airfieldField.Decode(data); err != nil {
		return err
	}
	if record.PlaneType, err = planeTypeField.Decode(data); err != nil {
		return err
	}
	record.Registration, err = registrationField.Decode(data)
	return err
}

func isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
