package tdb

import "fmt"

// WarningKind classifies the recoverable defects Validate reports.
type WarningKind int

const (
	WarnIndexNotSorted WarningKind = iota
	WarnDuplicateID
	WarnNonzeroPadding
	WarnNonzeroReserved
	WarnFlarmIDRange
)

func (k WarningKind) String() string {
	switch k {
	case WarnIndexNotSorted:
		return "index not sorted"
	case WarnDuplicateID:
		return "duplicate flarm id"
	case WarnNonzeroPadding:
		return "nonzero padding"
	case WarnNonzeroReserved:
		return "nonzero reserved bytes"
	case WarnFlarmIDRange:
		return "flarm id exceeds 24 bits"
	default:
		return "unknown"
	}
}

// Warning is a defect that does not prevent the database from loading.
// Pos is the record position it applies to, or -1 when it concerns the
// file as a whole.
type Warning struct {
	Kind   WarningKind
	Pos    int
	Detail string
}

func (w Warning) String() string {
	if w.Pos < 0 {
		return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
	}
	return fmt.Sprintf("record %d: %s: %s", w.Pos, w.Kind, w.Detail)
}
