// Package kb abstracts the knowledge base the scanner reads NVT metadata
// from. The loader only ever performs two operations against it: look up the
// recorded checksum of a feed file and overwrite the metadata entry of one
// advisory.
package kb

import "fmt"

// EntryFieldCount is the number of positional fields in an NVT metadata
// entry. The scanner addresses fields by index, so a store must reject any
// entry of a different width.
const EntryFieldCount = 15

type Store interface {
	// FileChecksum returns the recorded SHA-256 hex digest for the given
	// file path, or an empty string if none is recorded.
	FileChecksum(path string) (string, error)

	// PutAdvisory overwrites the metadata entry stored under key. The entry
	// must have exactly EntryFieldCount fields; otherwise *FormatError is
	// returned and nothing is written.
	PutAdvisory(key string, fields []string) error
}

// FormatError reports an entry whose field count does not match the fixed
// KB schema.
type FormatError struct {
	Key    string
	Fields int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("entry for %s has %d fields, expected %d", e.Key, e.Fields, EntryFieldCount)
}
