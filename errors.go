package tdb

import (
	"fmt"

	"github.com/flarmnet/go-tdb/codec"
	"github.com/flarmnet/go-tdb/index"
)

var (
	ErrTruncated     = addPrefix("truncated file")
	ErrIndexMismatch = addPrefix("index does not match record section")
	ErrNotFound      = addPrefix("no record with that flarm id")
)

// errors from the subpackages, re-exported so callers can match every
// failure with errors.Is against this package alone
var (
	ErrBadMagic     = codec.ErrBadMagic
	ErrShortBuffer  = codec.ErrShortBuffer
	ErrInvalidUTF8  = codec.ErrInvalidUTF8
	ErrFlarmIDRange = codec.ErrFlarmIDRange
	ErrNotSorted    = index.ErrNotSorted
	ErrDuplicateID  = index.ErrDuplicateID
)

func addPrefix(errStr string) error {
	return fmt.Errorf("tdb: %s", errStr)
}
