// Package uuidv7 generates, formats, parses and compares time-ordered UUIDs
// in the RFC 9562 version 7 layout.
//
// A UUID is a plain [16]byte. Its first 60 bits after removing the version
// nibble hold (unix_ms << 12) | sequence, so byte-wise comparison follows
// generation order for UUIDs from one Generator:
//
//	bytes 0-5   Unix time in milliseconds
//	bytes 6-7   version 0111 + 12-bit intra-millisecond sequence
//	byte  8     variant 10 + 6 random bits
//	bytes 9-15  random bits
//
// Basic Usage:
//
//	// Generate a new UUIDv7 (safe for concurrent use)
//	id := uuidv7.New()
//	fmt.Println(id.String())
//
//	// Parse the canonical form; any hex case is accepted
//	id, err := uuidv7.Parse("0190B6F5-3C3A-7000-8000-0E02B2C3D479")
//	if err != nil {
//	    // err == uuidv7.ErrInvalidFormat
//	}
//
//	// Fields
//	ms := id.Timestamp()
//	seq := id.Sequence()
//	last, _ := id.ToUint16(14)
//
// Generation Contexts:
//
// A Generator holds the last millisecond, the sequence counter and a
// PCG random source seeded from crypto/rand. It is not safe for concurrent
// use; each goroutine should own one:
//
//	gen := uuidv7.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id := gen.New() // strictly increasing while the clock does not go back
//	}
//
// Within one millisecond the sequence increments; it is 16 bits wide but only
// the low 12 bits are encoded, so more than 4096 UUIDs per millisecond from
// one Generator wrap. When the clock goes backwards the smaller reading is
// used and the sequence restarts. The package-level New pools Generators,
// so its results are only ordered across different milliseconds.
//
// The random bits come from a non-cryptographic generator: UUIDs are unique
// with high probability but are not unpredictable.
package uuidv7
