package trace_test

import (
	"testing"

	"github.com/on-the-ground/adapt_ive_go/dynarray/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmitterStampsEvents(t *testing.T) {
	col := &trace.Collector{}
	em := trace.NewEmitter("array-under-test", col)

	em.Init(4)
	em.Grow("append", 4, 8, 4)
	em.Latch("get_at", "out_of_bounds", 8, 5)

	events := col.Events()
	require.Len(t, events, 3)

	wantHandle := trace.HandleOf("array-under-test")
	for _, ev := range events {
		assert.Equal(t, "array-under-test", ev.ArrayID)
		assert.Equal(t, wantHandle, ev.Handle)
		assert.NotEqual(t, trace.TimeSpan{}, ev.Span, "span must be stamped")
	}

	assert.Equal(t, trace.KindInit, events[0].Kind)
	assert.Equal(t, uint64(4), events[0].NewCap)

	assert.Equal(t, trace.KindGrow, events[1].Kind)
	assert.Equal(t, "append", events[1].Op)
	assert.Equal(t, uint64(4), events[1].OldCap)
	assert.Equal(t, uint64(8), events[1].NewCap)

	assert.Equal(t, trace.KindError, events[2].Kind)
	assert.Equal(t, "out_of_bounds", events[2].Reason)
	assert.Equal(t, events[2].OldCap, events[2].NewCap, "latch leaves capacity unchanged")
}

func TestEmitterNilRecorderFallsBackToNop(t *testing.T) {
	em := trace.NewEmitter("silent", nil)
	assert.NotPanics(t, func() {
		em.Init(1)
		em.Shrink("remove_last", 4, 2, 2)
		em.Release(2, 0)
	})
}

func TestCollectorOfKind(t *testing.T) {
	col := &trace.Collector{}
	em := trace.NewEmitter("filter-me", col)

	em.Grow("append", 1, 2, 1)
	em.Grow("append", 2, 4, 2)
	em.Shrink("remove_at", 4, 2, 2)

	grows := col.OfKind(trace.KindGrow)
	require.Len(t, grows, 2)
	assert.Equal(t, uint64(2), grows[0].NewCap)
	assert.Equal(t, uint64(4), grows[1].NewCap)

	assert.Empty(t, col.OfKind(trace.KindReset))
}

func TestZapRecorderLevels(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	rec := trace.NewZapRecorder(zap.New(core))
	em := trace.NewEmitter("logged", rec)

	em.Grow("append", 2, 4, 2)
	em.Latch("set_at", "out_of_bounds", 4, 3)

	logs := observed.All()
	require.Len(t, logs, 2)

	assert.Equal(t, zap.DebugLevel, logs[0].Level)
	assert.Equal(t, "dynamic array capacity event", logs[0].Message)

	assert.Equal(t, zap.WarnLevel, logs[1].Level)
	assert.Equal(t, "dynamic array error latched", logs[1].Message)

	fields := logs[1].ContextMap()
	assert.Equal(t, "logged", fields["arrayId"])
	assert.Equal(t, "set_at", fields["op"])
	assert.Equal(t, "out_of_bounds", fields["reason"])
}

func TestZapRecorderNilLogger(t *testing.T) {
	rec := trace.NewZapRecorder(nil)
	assert.NotPanics(t, func() {
		rec.Record(trace.Event{Kind: trace.KindInit})
	})
}
