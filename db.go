package tdb

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/flarmnet/go-tdb/codec"
	"github.com/flarmnet/go-tdb/index"
	"github.com/flarmnet/go-tdb/model"
)

var _ io.WriterTo = (*Database)(nil)

// Database is an in-memory TDB file: header, flarm id index and the
// records in index order. It is immutable once built, so lookups and
// serialization are safe for concurrent readers.
type Database struct {
	header   model.Header
	index    *index.Index
	records  []model.Record
	warnings []Warning

	codec  codec.Codec
	logger *slog.Logger
}

// Parse decodes a complete TDB file image. Structural damage (bad magic,
// truncation, an index that does not correspond to the record section,
// invalid utf-8 in a string field) fails hard; everything else is
// collected as warnings so damaged files stay loadable for inspection.
// Bytes beyond the size implied by the header are ignored.
func Parse(data []byte, opts ...Option) (*Database, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := o.buildCodec()

	if len(data) < model.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrTruncated, len(data), model.HeaderSize)
	}
	var header model.Header
	if err := c.UnmarshalHeader(data[:model.HeaderSize], &header); err != nil {
		return nil, err
	}

	// size check in uint64 before anything is allocated from the count:
	// the count comes off the wire and may be hostile
	count := uint64(header.RecordCount)
	need := uint64(model.HeaderSize) + count*model.IndexEntrySize + model.PaddingSize + count*model.RecordSize
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: header declares %d records (%d bytes), have %d",
			ErrTruncated, header.RecordCount, need, len(data))
	}

	db := &Database{
		header: header,
		codec:  c,
		logger: o.logger,
	}

	n := int(header.RecordCount)
	ids := make([]uint32, n)
	indexEnd := model.HeaderSize + n*model.IndexEntrySize
	if err := c.UnmarshalIndex(data[model.HeaderSize:indexEnd], ids); err != nil {
		return nil, err
	}

	for i, b := range data[indexEnd : indexEnd+model.PaddingSize] {
		if b != 0 {
			db.warnings = append(db.warnings, Warning{
				Kind:   WarnNonzeroPadding,
				Pos:    -1,
				Detail: fmt.Sprintf("padding byte %d is %#02x", i, b),
			})
			break
		}
	}

	db.records = make([]model.Record, n)
	recordsStart := indexEnd + model.PaddingSize
	for i := 0; i < n; i++ {
		off := recordsStart + i*model.RecordSize
		if err := c.UnmarshalRecord(data[off:off+model.RecordSize], &db.records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	var err error
	db.index, err = index.FromSorted(ids)
	if err != nil {
		// keep the wire order; Validate turns the disorder into warnings
		db.index = index.Raw(ids)
	}

	warnings, err := db.Validate()
	if err != nil {
		return nil, err
	}
	db.warnings = append(db.warnings, warnings...)
	db.logWarnings("parse")
	return db, nil
}

// New builds a database from records. The index is derived from the
// records' flarm ids, both sorted together; when an id occurs more than
// once the first record wins and the rest are dropped.
func New(version uint32, records []model.Record, opts ...Option) *Database {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := make([]uint32, len(records))
	for i := range records {
		ids[i] = uint32(records[i].FlarmID)
	}
	idx, perm, dropped := index.Build(ids)

	sorted := make([]model.Record, len(perm))
	for i, from := range perm {
		sorted[i] = records[from]
	}

	db := &Database{
		header: model.Header{
			Version:     version,
			RecordCount: uint32(len(sorted)),
		},
		index:   idx,
		records: sorted,
		codec:   o.buildCodec(),
		logger:  o.logger,
	}
	if dropped > 0 {
		db.warnings = append(db.warnings, Warning{
			Kind:   WarnDuplicateID,
			Pos:    -1,
			Detail: fmt.Sprintf("%d records dropped, first occurrence kept", dropped),
		})
	}
	warnings, _ := db.Validate()
	db.warnings = append(db.warnings, warnings...)
	db.logWarnings("new")
	return db
}

// Validate re-checks the structural invariants. A position where the
// index entry and the record's flarm id disagree is an error: lookups
// would return the wrong record. Index disorder, duplicate ids, ids
// beyond 24 bits and nonzero reserved bytes come back as warnings.
func (db *Database) Validate() ([]Warning, error) {
	if db.index.Len() != len(db.records) {
		return nil, fmt.Errorf("%w: %d index entries, %d records",
			ErrIndexMismatch, db.index.Len(), len(db.records))
	}

	var warnings []Warning
	for i, record := range db.records {
		id := db.index.At(i)
		if id != uint32(record.FlarmID) {
			return nil, fmt.Errorf("%w: entry %d is %06X, record has %06X",
				ErrIndexMismatch, i, id, uint32(record.FlarmID))
		}
		if i > 0 {
			switch prev := db.index.At(i - 1); {
			case id == prev:
				warnings = append(warnings, Warning{
					Kind:   WarnDuplicateID,
					Pos:    i,
					Detail: fmt.Sprintf("%06X repeats entry %d", id, i-1),
				})
			case id < prev:
				warnings = append(warnings, Warning{
					Kind:   WarnIndexNotSorted,
					Pos:    i,
					Detail: fmt.Sprintf("%06X after %06X", id, prev),
				})
			}
		}
		if !record.FlarmID.Valid() {
			warnings = append(warnings, Warning{
				Kind:   WarnFlarmIDRange,
				Pos:    i,
				Detail: fmt.Sprintf("%08X exceeds %06X", uint32(record.FlarmID), uint32(model.MaxFlarmID)),
			})
		}
		if len(record.Reserved) > 0 {
			warnings = append(warnings, Warning{
				Kind:   WarnNonzeroReserved,
				Pos:    i,
				Detail: fmt.Sprintf("% x", record.Reserved),
			})
		}
	}
	return warnings, nil
}

// LookupByFlarmID returns the record for id, found by binary search
// over the index.
func (db *Database) LookupByFlarmID(id model.FlarmID) (model.Record, error) {
	pos, ok := db.index.Lookup(uint32(id))
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return db.records[pos], nil
}

// WriteTo writes the database in file order: header, index, padding,
// records. The count and index are re-derived from the records, sorted
// and de-duplicated, so the output is canonical even when the database
// was parsed from a disordered file. Output is byte-identical to the
// input for files that parsed without warnings.
func (db *Database) WriteTo(w io.Writer) (int64, error) {
	// ids are checked up front so nothing is written for a database
	// that cannot be encoded
	for i := range db.records {
		if !db.records[i].FlarmID.Valid() {
			return 0, fmt.Errorf("record %d: %w: %08X", i, ErrFlarmIDRange, uint32(db.records[i].FlarmID))
		}
	}

	ids := make([]uint32, len(db.records))
	for i := range db.records {
		ids[i] = uint32(db.records[i].FlarmID)
	}
	idx, perm, dropped := index.Build(ids)
	if db.logger != nil && dropped > 0 {
		db.logger.Warn("duplicate flarm ids dropped on write", "dropped", dropped)
	}

	header := model.Header{
		Version:     db.header.Version,
		RecordCount: uint32(idx.Len()),
	}
	headerData, err := db.codec.MarshalHeader(&header)
	if err != nil {
		return 0, err
	}
	indexData, err := db.codec.MarshalIndex(idx.IDs())
	if err != nil {
		return 0, err
	}

	var written int64
	for _, section := range [][]byte{headerData, indexData, make([]byte, model.PaddingSize)} {
		n, err := w.Write(section)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	for _, from := range perm {
		recordData, err := db.codec.MarshalRecord(&db.records[from])
		if err != nil {
			return written, fmt.Errorf("record %d: %w", from, err)
		}
		n, err := w.Write(recordData)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	if db.logger != nil {
		db.logger.Debug("database written", "records", idx.Len(), "bytes", written)
	}
	return written, nil
}

// Serialize renders the database as a complete TDB file image.
func (db *Database) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(model.FileSize(len(db.records)))
	if _, err := db.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Header returns the header as parsed or built.
func (db *Database) Header() model.Header {
	return db.header
}

// Version returns the header's regeneration counter.
func (db *Database) Version() uint32 {
	return db.header.Version
}

// Len returns the number of records.
func (db *Database) Len() int {
	return len(db.records)
}

// Records returns a copy of the records in index order.
func (db *Database) Records() []model.Record {
	return append([]model.Record(nil), db.records...)
}

// Warnings returns the defects collected when the database was built.
func (db *Database) Warnings() []Warning {
	return append([]Warning(nil), db.warnings...)
}

func (db *Database) logWarnings(op string) {
	if db.logger == nil {
		return
	}
	for _, w := range db.warnings {
		db.logger.Warn("validation warning", "op", op, "kind", w.Kind.String(), "pos", w.Pos, "detail", w.Detail)
	}
	db.logger.Debug("database ready", "op", op, "records", len(db.records), "warnings", len(db.warnings))
}
