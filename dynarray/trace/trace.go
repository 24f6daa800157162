// Package trace carries capacity-transition events out of dynamic arrays.
//
// Every array owns an Emitter bound to the array's correlation id. The
// emitter stamps each event with the id, a compact xxhash handle of it,
// and a TimeSpan taken at emission, then hands the event to a Recorder.
// Recording is synchronous on the calling goroutine; the arrays themselves
// are single-threaded, so recorders need no internal locking unless they
// are shared across instances owned by different goroutines.
package trace

import (
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rickb777/date/v2/timespan"
)

// Kind names the capacity transition an Event describes.
type Kind string

const (
	// KindInit is emitted once, when an array is constructed.
	KindInit Kind = "init"

	// KindGrow is emitted after a successful doubling of the buffer.
	KindGrow Kind = "grow"

	// KindShrink is emitted after a successful halving of the buffer.
	KindShrink Kind = "shrink"

	// KindReset is emitted when an array drops its elements and returns
	// to its capacity floor.
	KindReset Kind = "reset"

	// KindRelease is emitted when an array gives up its buffer.
	KindRelease Kind = "release"

	// KindError is emitted when an operation latches the array's sticky
	// error flag.
	KindError Kind = "error"
)

// TimeSpan is the stamp attached to every event.
type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

// Now returns a TimeSpan bracketing the current instant.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

// HandleOf derives the compact numeric handle recorders log alongside the
// full array id.
func HandleOf(arrayID string) uint64 {
	return xxhash.Sum64String(arrayID)
}

// Event is one capacity transition of one array.
type Event struct {
	ArrayID string
	Handle  uint64
	Kind    Kind
	Op      string
	OldCap  uint64
	NewCap  uint64
	Size    uint64
	Reason  string
	Span    TimeSpan
}

// Recorder consumes events. Record is called synchronously by the array
// performing the transition.
type Recorder interface {
	Record(Event)
}

var _ Recorder = Nop{}

// Nop discards every event. It is the default recorder.
type Nop struct{}

func (Nop) Record(Event) {}

var _ Recorder = &Collector{}

// Collector keeps every recorded event in order. It is meant for tests and
// one-off diagnostics and is not safe for concurrent use.
type Collector struct {
	events []Event
}

func (c *Collector) Record(ev Event) {
	c.events = append(c.events, ev)
}

// Events returns a copy of everything recorded so far.
func (c *Collector) Events() []Event {
	return slices.Clone(c.events)
}

// OfKind returns the recorded events of one kind, in order.
func (c *Collector) OfKind(kind Kind) []Event {
	var out []Event
	for _, ev := range c.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// Emitter stamps and records the events of a single array.
type Emitter struct {
	arrayID string
	handle  uint64
	rec     Recorder
}

// NewEmitter binds an array id to a recorder. A nil recorder falls back
// to Nop.
func NewEmitter(arrayID string, rec Recorder) *Emitter {
	if rec == nil {
		rec = Nop{}
	}
	return &Emitter{
		arrayID: arrayID,
		handle:  HandleOf(arrayID),
		rec:     rec,
	}
}

func (e *Emitter) Init(capacity uint64) {
	e.emit(Event{Kind: KindInit, Op: "init", NewCap: capacity})
}

func (e *Emitter) Grow(op string, oldCap, newCap, size uint64) {
	e.emit(Event{Kind: KindGrow, Op: op, OldCap: oldCap, NewCap: newCap, Size: size})
}

func (e *Emitter) Shrink(op string, oldCap, newCap, size uint64) {
	e.emit(Event{Kind: KindShrink, Op: op, OldCap: oldCap, NewCap: newCap, Size: size})
}

func (e *Emitter) Reset(oldCap, newCap uint64) {
	e.emit(Event{Kind: KindReset, Op: "reset", OldCap: oldCap, NewCap: newCap})
}

func (e *Emitter) Release(capacity, size uint64) {
	e.emit(Event{Kind: KindRelease, Op: "release", OldCap: capacity, Size: size})
}

// Latch reports that op latched the array's error flag. The capacity is
// unchanged by a latch, so it rides in both capacity fields.
func (e *Emitter) Latch(op, reason string, capacity, size uint64) {
	e.emit(Event{Kind: KindError, Op: op, OldCap: capacity, NewCap: capacity, Size: size, Reason: reason})
}

func (e *Emitter) emit(ev Event) {
	ev.ArrayID = e.arrayID
	ev.Handle = e.handle
	ev.Span = Now()
	e.rec.Record(ev)
}
