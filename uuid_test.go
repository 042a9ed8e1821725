package uuidv7

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

var sampleUUID = UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

func TestUUID_String(t *testing.T) {
	tests := []struct {
		name string
		uuid UUID
		want string
	}{
		{
			name: "nil",
			uuid: Nil,
			want: "00000000-0000-0000-0000-000000000000",
		},
		{
			name: "hex grouping",
			uuid: UUID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xf0, 0x0f, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc},
			want: "01234567-89ab-cdef-f00f-123456789abc",
		},
		{
			name: "sample",
			uuid: sampleUUID,
			want: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.uuid.String()
			if got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
			if len(got) != canonicalLen {
				t.Errorf("len(String()) = %d, want %d", len(got), canonicalLen)
			}
		})
	}
}

func TestUUID_IsNil(t *testing.T) {
	nilUUID := Nil
	if !nilUUID.IsNil() {
		t.Error("Nil UUID should return true for IsNil()")
	}

	nonNilUUID := UUID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if nonNilUUID.IsNil() {
		t.Error("Non-nil UUID should return false for IsNil()")
	}
}

func TestUUID_Version(t *testing.T) {
	uuid := UUID{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x70, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if got := uuid.Version(); got != VersionTimeSorted {
		t.Errorf("Version() = %v, want %v", got, VersionTimeSorted)
	}
}

func TestUUID_Variant(t *testing.T) {
	tests := []struct {
		name string
		b8   byte
		want Variant
	}{
		{"ncs", 0x00, VariantNCS},
		{"rfc4122", 0x80, VariantRFC4122},
		{"rfc4122 max", 0xbf, VariantRFC4122},
		{"microsoft", 0xc0, VariantMicrosoft},
		{"future", 0xe0, VariantFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uuid UUID
			uuid[8] = tt.b8
			if got := uuid.Variant(); got != tt.want {
				t.Errorf("Variant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUUID_Validate(t *testing.T) {
	tests := []struct {
		name string
		uuid UUID
		want error
	}{
		{"v7", UUID{6: 0x70, 8: 0x80}, nil},
		{"v4", sampleUUID, ErrInvalidVersion},
		{"nil", Nil, ErrInvalidVersion},
		{"v7 wrong variant", UUID{6: 0x70, 8: 0xc0}, ErrInvalidVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.uuid.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUUID_Bytes(t *testing.T) {
	uuid := sampleUUID
	b := uuid.Bytes()
	if len(b) != 16 {
		t.Errorf("Bytes() length = %d, want 16", len(b))
	}
	if !bytes.Equal(b, uuid[:]) {
		t.Error("Bytes() did not return correct byte slice")
	}

	b[0] = 0x00
	if uuid[0] != 0xf4 {
		t.Error("Bytes() returned a slice aliasing the UUID")
	}
}

func TestFromBytes(t *testing.T) {
	got, err := FromBytes(sampleUUID[:])
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if got != sampleUUID {
		t.Errorf("FromBytes() = %v, want %v", got, sampleUUID)
	}
}

func TestFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"too short", []byte{0x01, 0x02, 0x03}},
		{"too long", make([]byte, 20)},
		{"empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.input)
			if err != ErrInvalidLength {
				t.Errorf("FromBytes() error = %v, want %v", err, ErrInvalidLength)
			}
		})
	}
}

func TestMustFromBytes(t *testing.T) {
	uuid := MustFromBytes(sampleUUID[:])
	if uuid.IsNil() {
		t.Error("MustFromBytes() returned nil UUID")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on invalid input")
		}
	}()
	MustFromBytes([]byte{0x01})
}

func TestUUID_TimestampAndSequence(t *testing.T) {
	// unix_ms 0x0190b6f53c3a, sequence 0x5a3
	uuid := MustParse("0190b6f5-3c3a-75a3-8000-000000000000")

	if got, want := uuid.Timestamp(), int64(0x0190b6f53c3a); got != want {
		t.Errorf("Timestamp() = %#x, want %#x", got, want)
	}
	if got, want := uuid.Sequence(), uint16(0x5a3); got != want {
		t.Errorf("Sequence() = %#x, want %#x", got, want)
	}
	if got, want := uuid.Time(), time.UnixMilli(0x0190b6f53c3a); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestUUID_Timestamp_NonV7(t *testing.T) {
	uuid := UUID{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if ts := uuid.Timestamp(); ts != 0 {
		t.Errorf("Timestamp() for non-v7 UUID = %v, want 0", ts)
	}
	if seq := uuid.Sequence(); seq != 0 {
		t.Errorf("Sequence() for non-v7 UUID = %v, want 0", seq)
	}
	if tm := uuid.Time(); !tm.IsZero() {
		t.Errorf("Time() for non-v7 UUID = %v, want zero time", tm)
	}
}

func TestUUID_MarshalUnmarshalText(t *testing.T) {
	text, err := sampleUUID.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != sampleUUID.String() {
		t.Errorf("MarshalText() = %s, want %s", text, sampleUUID.String())
	}

	var uuid2 UUID
	if err := uuid2.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if sampleUUID != uuid2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, sampleUUID)
	}

	if err := uuid2.UnmarshalText([]byte("f47ac10b58cc4372a5670e02b2c3d479")); err != ErrInvalidFormat {
		t.Errorf("UnmarshalText() of unhyphenated form error = %v, want %v", err, ErrInvalidFormat)
	}
}

func TestUUID_MarshalUnmarshalBinary(t *testing.T) {
	data, err := sampleUUID.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != 16 {
		t.Errorf("MarshalBinary() length = %d, want 16", len(data))
	}

	var uuid2 UUID
	if err := uuid2.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if sampleUUID != uuid2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, sampleUUID)
	}

	if err := uuid2.UnmarshalBinary(data[:15]); err != ErrInvalidLength {
		t.Errorf("UnmarshalBinary() short input error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestUUID_JSON(t *testing.T) {
	type TestStruct struct {
		ID UUID `json:"id"`
	}

	data, err := json.Marshal(TestStruct{ID: sampleUUID})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"id":"f47ac10b-58cc-4372-a567-0e02b2c3d479"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var ts2 TestStruct
	if err := json.Unmarshal(data, &ts2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if ts2.ID != sampleUUID {
		t.Errorf("JSON Marshal/Unmarshal mismatch: got %v, want %v", ts2.ID, sampleUUID)
	}
}

func TestUUID_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    UUID
		wantErr bool
	}{
		{
			name:  "string input",
			input: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			want:  sampleUUID,
		},
		{
			name:  "byte slice input - 16 bytes",
			input: sampleUUID.Bytes(),
			want:  sampleUUID,
		},
		{
			name:  "byte slice input - string format",
			input: []byte("F47AC10B-58CC-4372-A567-0E02B2C3D479"),
			want:  sampleUUID,
		},
		{
			name:  "nil input",
			input: nil,
			want:  Nil,
		},
		{
			name:    "malformed string",
			input:   "f47ac10b",
			wantErr: true,
		},
		{
			name:    "invalid type",
			input:   123,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uuid UUID
			err := uuid.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && uuid != tt.want {
				t.Errorf("Scan() = %v, want %v", uuid, tt.want)
			}
		})
	}
}

func TestUUID_Value(t *testing.T) {
	val, err := sampleUUID.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	b, ok := val.([]byte)
	if !ok {
		t.Fatalf("Value() returned non-[]byte type: %T", val)
	}
	if !bytes.Equal(b, sampleUUID[:]) {
		t.Errorf("Value() = %x, want %x", b, sampleUUID[:])
	}
}
