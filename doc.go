// Package tdb reads and writes TDB files, the binary database format
// avionics devices use to carry FlarmNet aircraft identification data.
//
// A file is one contiguous table, all integers little-endian:
//
//	[4]   magic 08 D5 19 87
//	[4]   version, u32
//	[4]   record count N, u32
//	[4*N] flarm id index, ascending u32
//	[8]   zero padding
//	[96*N] records
//
// Each record pairs a 24-bit flarm id with a radio frequency in kHz and
// five fixed-width NUL-terminated UTF-8 text fields. The index mirrors
// the records' ids positionally, which is what makes binary-search
// lookup valid. Where the pilot name lives inside a record is ambiguous
// in the wild; codec.OffsetPolicy makes that choice explicit instead of
// guessing, and Offset32 is the default.
//
// Parse fails hard only on damage that breaks the structure (bad magic,
// truncation, index/record mismatch, invalid UTF-8). Everything else is
// reported through Warnings so a damaged file can still be inspected.
package tdb
