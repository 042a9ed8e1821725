package uuidv7

import (
	"bytes"
	"slices"
)

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
//
// The timestamp occupies the leading bytes, so UUIDs from one Generator
// compare in generation order.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u[:], other[:])
}

// Less reports whether u sorts before other
func (u UUID) Less(other UUID) bool {
	return u.Compare(other) < 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Sort sorts ids in ascending byte order
func Sort(ids []UUID) {
	slices.SortFunc(ids, UUID.Compare)
}

// ToUint16 reads bytes [offset, offset+1] as a big-endian uint16.
// offset must be in [0, 14]; anything else returns ErrOutOfRange.
func (u UUID) ToUint16(offset int) (uint16, error) {
	if offset < 0 || offset > len(u)-2 {
		return 0, ErrOutOfRange
	}
	return uint16(u[offset])<<8 | uint16(u[offset+1]), nil
}

// Uint16 returns the last two bytes as a big-endian uint16
func (u UUID) Uint16() uint16 {
	return uint16(u[14])<<8 | uint16(u[15])
}
