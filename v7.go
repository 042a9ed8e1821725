package uuidv7

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// Event describes how a Generator moved its sequence state on a call to New.
type Event int

const (
	// EventNewMillis means the clock advanced and the sequence restarted at 0
	EventNewMillis Event = iota
	// EventSameMillis means the clock did not move and the sequence was incremented
	EventSameMillis
	// EventClockRegression means the clock went backwards; the smaller
	// reading was accepted and the sequence restarted at 0
	EventClockRegression
	// EventSequenceWrap means the sequence passed 0xfff within one
	// millisecond and the encoded value wrapped
	EventSequenceWrap
)

func (e Event) String() string {
	switch e {
	case EventNewMillis:
		return "new_millis"
	case EventSameMillis:
		return "same_millis"
	case EventClockRegression:
		return "clock_regression"
	case EventSequenceWrap:
		return "sequence_wrap"
	default:
		return "unknown"
	}
}

// Observer receives one Event per generated UUID. It is called synchronously
// from New and must not block.
type Observer interface {
	Observe(Event)
}

// Generator is a UUIDv7 generation context: the last millisecond seen, the
// intra-millisecond sequence and a seeded pseudorandom source.
//
// A Generator is not safe for concurrent use. Give each goroutine its own
// Generator; UUIDs from one Generator are ordered, UUIDs from different
// Generators are only ordered at millisecond granularity.
type Generator struct {
	lastMillis uint64
	sequence   uint16 // wraps at 16 bits, only the low 12 bits are encoded

	now      func() time.Time
	rng      *rand.Rand
	observer Observer
}

// Option configures a Generator
type Option func(*Generator)

// WithClock replaces time.Now as the generator's clock
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRandSource replaces the entropy-seeded PCG source. This is primarily
// useful for tests that need reproducible random bits.
func WithRandSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}

// WithObserver registers an Observer for generation events
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// NewGenerator creates a new UUIDv7 generator. By default it reads time.Now
// and draws random bits from a PCG source seeded once from crypto/rand.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(newSeededSource())
	}
	return g
}

// newSeededSource seeds a PCG source from the OS entropy pool, falling back
// to the wall clock if it cannot be read.
func newSeededSource() rand.Source {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		ns := uint64(time.Now().UnixNano())
		binary.BigEndian.PutUint64(seed[0:8], ns)
		binary.BigEndian.PutUint64(seed[8:16], ns^0x9e3779b97f4a7c15)
	}
	return rand.NewPCG(binary.BigEndian.Uint64(seed[0:8]), binary.BigEndian.Uint64(seed[8:16]))
}

// New generates a new UUIDv7 with the generator's clock
func (g *Generator) New() UUID {
	return g.NewAt(g.now())
}

// NewAt generates a new UUIDv7 as if the clock read t. It advances the same
// sequence state as New.
func (g *Generator) NewAt(t time.Time) UUID {
	millis := uint64(t.UnixMilli())
	g.advance(millis)

	var uuid UUID

	// 60-bit encoded timestamp: milliseconds above, sequence in the low 12 bits
	timestamp := millis<<12 | uint64(g.sequence&sequenceMask)

	timeLow := uint32(timestamp >> 28)
	timeMid := uint16(timestamp >> 12)
	timeHiAndVersion := uint16(timestamp&sequenceMask) | versionBits<<8

	binary.BigEndian.PutUint32(uuid[0:4], timeLow)
	binary.BigEndian.PutUint16(uuid[4:6], timeMid)
	binary.BigEndian.PutUint16(uuid[6:8], timeHiAndVersion)

	r1 := g.rng.Uint64()
	r2 := g.rng.Uint64()

	// clock_seq: 14 random bits, variant 10 in the top of the high byte
	clockSeq := uint16(r1 & 0x3fff)
	uuid[8] = byte(clockSeq>>8)&0x3f | variantBits
	uuid[9] = byte(clockSeq)

	// node: 48 random bits
	var node [8]byte
	binary.BigEndian.PutUint64(node[:], r2&0x0000ffffffffffff)
	copy(uuid[10:16], node[2:8])

	return uuid
}

// advance moves the sequence state to millis and reports the transition
func (g *Generator) advance(millis uint64) {
	var event Event
	switch {
	case millis > g.lastMillis:
		g.lastMillis = millis
		g.sequence = 0
		event = EventNewMillis
	case millis == g.lastMillis:
		g.sequence++
		event = EventSameMillis
		if g.sequence&sequenceMask == 0 {
			event = EventSequenceWrap
		}
	default:
		// Strict monotonicity is not kept across a clock regression.
		g.lastMillis = millis
		g.sequence = 0
		event = EventClockRegression
	}
	if g.observer != nil {
		g.observer.Observe(event)
	}
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidv7.Must(uuidv7.Parse("0190b6f5-3c3a-7000-8000-000000000000"))
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// generators holds per-caller generation contexts for the package-level New
var generators = sync.Pool{
	New: func() any { return NewGenerator() },
}

// New generates a new UUIDv7 using a pooled Generator. It is safe for
// concurrent use; ordering between two calls is guaranteed only when their
// milliseconds differ.
func New() UUID {
	g := generators.Get().(*Generator)
	uuid := g.New()
	generators.Put(g)
	return uuid
}

// NewV7 is an alias for New() for explicit version specification
func NewV7() UUID {
	return New()
}
