package uuidv7

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	buf := make([]byte, canonicalLen)
	encodeHex(buf, u)
	return buf, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Only the canonical form is accepted.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface. It accepts 16 raw bytes
// (BINARY(16) columns) or the canonical text form.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*u = Nil
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == len(u) {
			copy(u[:], src)
			return nil
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("uuidv7: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface. The UUID is stored as
// 16 raw bytes so that the column orders the same way Compare does.
func (u UUID) Value() (driver.Value, error) {
	return u.Bytes(), nil
}
