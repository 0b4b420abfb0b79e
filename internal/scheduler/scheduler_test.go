package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsInExpiryOrder(t *testing.T) {
	s := New()
	var order []string
	s.Schedule(1, 2, func() { order = append(order, "late") })
	s.Schedule(1, 1, func() { order = append(order, "first") })
	s.Schedule(2, 1, func() { order = append(order, "second") })
	require.Equal(t, 3, s.Pending())

	assert.Zero(t, s.Advance(0.5))
	assert.Equal(t, 2, s.Advance(0.5))
	assert.Equal(t, []string{"first", "second"}, order)

	assert.Equal(t, 1, s.Advance(5))
	assert.Equal(t, []string{"first", "second", "late"}, order)
	assert.Zero(t, s.Pending())
	assert.Equal(t, 6.0, s.Now())
}

func TestScheduler_AccumulatedDeltaHitsExpiry(t *testing.T) {
	s := New()
	fired := false
	s.Schedule(1, 1, func() { fired = true })

	for i := 0; i < 9; i++ {
		s.Advance(0.1)
	}
	assert.False(t, fired)
	s.Advance(0.1)
	assert.True(t, fired, "0.1 summed ten times must reach 1.0")
}

func TestScheduler_Cancel(t *testing.T) {
	s := New()
	ran := 0
	id := s.Schedule(1, 1, func() { ran++ })

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	s.Advance(2)
	assert.Zero(t, ran)
}

func TestScheduler_CancelOwner(t *testing.T) {
	s := New()
	var ran []int
	s.Schedule(7, 1, func() { ran = append(ran, 1) })
	s.Schedule(7, 2, func() { ran = append(ran, 2) })
	s.Schedule(8, 1, func() { ran = append(ran, 3) })

	assert.Equal(t, 2, s.CancelOwner(7))
	assert.Zero(t, s.CancelOwner(7))
	s.Advance(3)
	assert.Equal(t, []int{3}, ran)
}

func TestScheduler_TaskCancelledDuringAdvance(t *testing.T) {
	s := New()
	ran := false
	var victim TaskID
	s.Schedule(1, 1, func() { s.Cancel(victim) })
	victim = s.Schedule(2, 1, func() { ran = true })

	assert.Equal(t, 1, s.Advance(1))
	assert.False(t, ran)
}

func TestScheduler_TasksScheduledDuringAdvanceWaitForNextCall(t *testing.T) {
	s := New()
	var order []string
	s.Schedule(1, 1, func() {
		order = append(order, "outer")
		s.Schedule(1, 0, func() { order = append(order, "inner") })
	})

	s.Advance(1)
	assert.Equal(t, []string{"outer"}, order)
	s.Advance(0)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestScheduler_NegativeDelayRunsOnNextAdvance(t *testing.T) {
	s := New()
	ran := false
	s.Schedule(1, -5, func() { ran = true })
	s.Advance(0)
	assert.True(t, ran)
}
