package uuidv7

import (
	"encoding/hex"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// canonicalLen is the length of xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
const canonicalLen = 36

// Parse decodes a UUID from its canonical 36 character form
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx. Hex digits may be upper or lower
// case; String on the result always yields lowercase.
//
// Any deviation (length, hyphen placement, non-hex digit) returns
// ErrInvalidFormat and the nil UUID. Version and variant bits are not
// checked; use Validate for that.
func Parse(s string) (UUID, error) {
	var uuid UUID

	if len(s) != canonicalLen {
		return Nil, ErrInvalidFormat
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Nil, ErrInvalidFormat
	}

	// Decode each segment
	if err := decodeHexSegment(uuid[0:4], s[0:8]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[4:6], s[9:13]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[6:8], s[14:18]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[8:10], s[19:23]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[10:16], s[24:36]); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidv7: Parse(%q): %v", s, err))
	}
	return uuid
}

// ParseAll parses every string in ss. On failure it still returns the
// UUIDs that parsed, in input order, and a *multierror.Error holding one
// entry per rejected string; each entry wraps ErrInvalidFormat.
func ParseAll(ss []string) ([]UUID, error) {
	var result *multierror.Error
	out := make([]UUID, 0, len(ss))
	for i, s := range ss {
		uuid, err := Parse(s)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("input %d (%q): %w", i, s, err))
			continue
		}
		out = append(out, uuid)
	}
	return out, result.ErrorOrNil()
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if len(src) != 2*len(dst) {
		return ErrInvalidFormat
	}
	for i := 0; i < len(dst); i++ {
		hi, ok1 := fromHexChar(src[2*i])
		lo, ok2 := fromHexChar(src[2*i+1])
		if !ok1 || !ok2 {
			return ErrInvalidFormat
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

// fromHexChar converts a hex character into its value
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeFromHex decodes a 32 character hexadecimal string (no hyphens) to UUID
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 2*len(uuid) {
		return Nil, ErrInvalidFormat
	}
	if _, err := hex.Decode(uuid[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return uuid, nil
}
