package uuidv7

import (
	"encoding/hex"
	"time"
)

// UUID is a 128-bit (16 byte) identifier laid out as an RFC 9562 version 7 UUID:
//
//	bytes 0-3   time_low                   high bits of the encoded timestamp
//	bytes 4-5   time_mid
//	bytes 6-7   time_hi_and_version        low 12 timestamp bits + version 0111
//	byte  8     clock_seq_hi_and_reserved  6 random bits + variant 10
//	byte  9     clock_seq_low
//	bytes 10-15 node                       random bits
//
// The encoded timestamp is (unix_ms << 12) | sequence, so bytes 0-5 carry the
// Unix time in milliseconds and the low 12 bits of bytes 6-7 carry the
// intra-millisecond sequence. UUID is a plain value and is safe to copy.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionReordered
	VersionTimeSorted // UUIDv7
	VersionCustom     // UUIDv8
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

const (
	versionBits  = 0x70
	variantBits  = 0x80
	variantMask  = 0xc0
	sequenceMask = 0x0fff
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & variantMask) == variantBits:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Validate reports whether u carries the version 7 tag and the RFC 4122
// variant. Parse does not call it: any well-formed string decodes.
func (u UUID) Validate() error {
	if u.Version() != VersionTimeSorted {
		return ErrInvalidVersion
	}
	if u.Variant() != VariantRFC4122 {
		return ErrInvalidVariant
	}
	return nil
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex writes the lowercase 8-4-4-4-12 form of u into dst[:36]
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Bytes returns a copy of the UUID as a byte slice
func (u UUID) Bytes() []byte {
	b := make([]byte, len(u))
	copy(b, u[:])
	return b
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != len(uuid) {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7.
// It returns 0 for other versions.
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// bytes 0-5 hold encoded>>12, i.e. the millisecond count
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Time returns the timestamp as a time.Time for UUIDv7
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeSorted {
		return time.Time{}
	}
	return time.UnixMilli(u.Timestamp())
}

// Sequence returns the 12-bit intra-millisecond sequence of a UUIDv7.
// It returns 0 for other versions.
func (u UUID) Sequence() uint16 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	return (uint16(u[6])<<8 | uint16(u[7])) & sequenceMask
}
