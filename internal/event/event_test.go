package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_SubscribeAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var got []string
	first := d.SubscribeFunc(ShotFired, func(e Event) { got = append(got, "a:"+e.Data.(ShotData).Source) })
	d.SubscribeFunc(ShotFired, func(e Event) { got = append(got, "b:"+e.Data.(ShotData).Source) })
	assert.Equal(t, 2, d.ListenerCount(ShotFired))

	d.Dispatch(Event{Type: ShotFired, Data: ShotData{Source: "primary"}})
	assert.Equal(t, []string{"a:primary", "b:primary"}, got)

	d.Unsubscribe(ShotFired, first)
	d.Unsubscribe(ShotFired, first)
	d.Dispatch(Event{Type: ShotFired, Data: ShotData{Source: "frag"}})
	assert.Equal(t, []string{"a:primary", "b:primary", "b:frag"}, got)
	assert.Equal(t, 1, d.ListenerCount(ShotFired))
}

func TestDispatcher_NoListenersIsSafe(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameLost}) })
}

func TestDispatcher_ChangesDuringDispatchApplyNextTime(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.SubscribeFunc(GameLost, func(Event) {
		calls++
		d.SubscribeFunc(GameLost, func(Event) { calls += 10 })
	})

	d.Dispatch(Event{Type: GameLost})
	assert.Equal(t, 1, calls)
	d.Dispatch(Event{Type: GameLost})
	assert.Equal(t, 12, calls)
}

func TestChannel_Broadcast(t *testing.T) {
	c := NewChannel("turn_group_aggressive")
	calls := 0
	assert.True(t, c.Subscribe(func() { calls++ }))
	assert.True(t, c.Subscribe(func() { calls++ }))
	assert.False(t, c.Subscribe(nil))

	assert.Equal(t, 2, c.Invoke())
	assert.Equal(t, 2, c.Invoke())
	assert.Equal(t, 4, calls)
	assert.False(t, c.Disarmed())
	assert.Equal(t, "turn_group_aggressive", c.Name())
}

func TestChannel_OneShotDisarmsAfterFirstDelivery(t *testing.T) {
	c := NewOneShotChannel("on_enemy_damage")
	calls := 0
	c.Subscribe(func() { calls++ })

	assert.Equal(t, 1, c.Invoke())
	assert.True(t, c.Disarmed())
	assert.Zero(t, c.Invoke())
	assert.False(t, c.Subscribe(func() { calls++ }))
	assert.Zero(t, c.Len())
	assert.Equal(t, 1, calls)
}

func TestChannel_EmptyOneShotStaysArmed(t *testing.T) {
	c := NewOneShotChannel("on_shot_fired")
	assert.Zero(t, c.Invoke())
	assert.False(t, c.Disarmed())
}

func TestChannel_DisarmFromHandler(t *testing.T) {
	c := NewChannel("grab_hyperseed")
	calls := 0
	c.Subscribe(func() { calls++; c.Disarm() })
	c.Subscribe(func() { calls++ })

	// Снимок подписчиков доставляется целиком
	assert.Equal(t, 2, c.Invoke())
	assert.Equal(t, 2, calls)
	assert.Zero(t, c.Invoke())
}
