// Package index holds the flarm id index of a database file: the ids in
// file order, searched by position.
package index

import (
	"errors"
	"fmt"
)

var (
	ErrNotSorted   = errors.New("tdb: index ids not in ascending order")
	ErrDuplicateID = errors.New("tdb: duplicate id in index")
)

// Index is the id section of a database file. Ids are expected in
// ascending order; Lookup relies on that.
type Index struct {
	ids []uint32
}

// Raw wraps ids without checking order. Use it to keep a damaged file
// searchable; Lookup may miss entries that are out of order.
func Raw(ids []uint32) *Index {
	return &Index{ids: ids}
}

// FromSorted wraps ids after verifying strict ascending order.
func FromSorted(ids []uint32) (*Index, error) {
	for i := 1; i < len(ids); i++ {
		switch {
		case ids[i] == ids[i-1]:
			return nil, fmt.Errorf("%w: %06X at entries %d and %d", ErrDuplicateID, ids[i], i-1, i)
		case ids[i] < ids[i-1]:
			return nil, fmt.Errorf("%w: entry %d (%06X) after %06X", ErrNotSorted, i, ids[i], ids[i-1])
		}
	}
	return &Index{ids: ids}, nil
}

// Lookup binary-searches for id and returns its position.
func (ix *Index) Lookup(id uint32) (int, bool) {
	lo, hi := 0, len(ix.ids)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case ix.ids[mid] < id:
			lo = mid + 1
		case ix.ids[mid] > id:
			hi = mid
		default:
			return mid, true
		}
	}
	return -1, false
}

func (ix *Index) Len() int {
	return len(ix.ids)
}

// At returns the id at position i in file order.
func (ix *Index) At(i int) uint32 {
	return ix.ids[i]
}

// IDs returns a copy of the ids in file order.
func (ix *Index) IDs() []uint32 {
	return append([]uint32(nil), ix.ids...)
}
