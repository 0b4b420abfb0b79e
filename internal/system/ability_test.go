package system

import (
	"testing"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/event"
	"go-drosera/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbility_FireStartsCooldownOnce(t *testing.T) {
	sched := scheduler.New()
	d := event.NewDispatcher()
	events := recordEvents(d, event.CooldownStarted, event.CooldownFinished)
	ammo := &component.AmmoPool{Loaded: 5, Held: 0, Max: 20}
	shots := &fakeShots{}

	activations := 0
	a := NewAbility("frag", "Frag", 6, 2, AbilityEffectFunc(func(AbilityContext) { activations++ }), AbilityDeps{
		Owner:      1,
		Ammo:       ammo,
		Scheduler:  sched,
		Dispatcher: d,
		Shots:      shots,
	})
	var finishedAt []float64
	a.OnCooldownFinished(func() { finishedAt = append(finishedAt, sched.Now()) })

	require.True(t, a.Fire(AbilityContext{}))
	assert.True(t, a.OnCooldown())
	assert.False(t, a.Fire(AbilityContext{}), "second fire during cooldown is ignored")

	assert.Equal(t, 1, activations)
	assert.Equal(t, 3, ammo.Loaded)
	assert.Equal(t, []string{"frag"}, shots.sources)
	assert.Equal(t, 1, events.cooldowns(event.CooldownStarted, "frag"))

	for i := 0; i < 23; i++ {
		sched.Advance(0.25)
	}
	assert.Empty(t, finishedAt)
	assert.True(t, a.OnCooldown())

	sched.Advance(0.25)
	require.Len(t, finishedAt, 1)
	assert.Equal(t, 6.0, finishedAt[0])
	assert.False(t, a.OnCooldown())
	assert.Equal(t, 1, events.cooldowns(event.CooldownFinished, "frag"))

	sched.Advance(10)
	assert.Len(t, finishedAt, 1)
	assert.True(t, a.Fire(AbilityContext{}))
	assert.Equal(t, 2, activations)
}

func TestAbility_RejectsWhenAmmoShort(t *testing.T) {
	ammo := &component.AmmoPool{Loaded: 1, Held: 10, Max: 20}
	activations := 0
	a := NewAbility("dot", "DOT", 8, 3, AbilityEffectFunc(func(AbilityContext) { activations++ }), AbilityDeps{
		Ammo:      ammo,
		Scheduler: scheduler.New(),
	})

	assert.False(t, a.Fire(AbilityContext{}))
	assert.Zero(t, activations)
	assert.False(t, a.OnCooldown())
	assert.Equal(t, 1, ammo.Loaded)
}

func TestAbility_WithoutSchedulerStaysOnCooldown(t *testing.T) {
	hooks, activations := 0, 0
	a := NewAbility("x", "X", 5, 0, AbilityEffectFunc(func(AbilityContext) { activations++ }), AbilityDeps{})
	a.OnCooldownFinished(func() { hooks++ })

	assert.True(t, a.Fire(AbilityContext{}))
	assert.True(t, a.OnCooldown())
	assert.False(t, a.Fire(AbilityContext{}), "only one cooldown timer may be in flight")
	assert.Equal(t, 1, activations)
	assert.Zero(t, hooks)
}

func TestAbility_CancelledWithOwner(t *testing.T) {
	sched := scheduler.New()
	a := NewAbility("x", "X", 1, 0, nil, AbilityDeps{Owner: 7, Scheduler: sched})

	require.True(t, a.Fire(AbilityContext{}))
	assert.Equal(t, 1, sched.CancelOwner(7))
	sched.Advance(5)
	assert.True(t, a.OnCooldown(), "a cancelled cooldown never finishes")
}

func TestAbilityLoadout(t *testing.T) {
	empty := NewAbilityLoadout(nil)
	assert.Nil(t, empty.Selected())
	empty.Swap()

	a := NewAbility("a", "A", 1, 0, nil, AbilityDeps{})
	b := NewAbility("b", "B", 1, 0, nil, AbilityDeps{})
	l := NewAbilityLoadout(nil, a, b)
	assert.Same(t, a, l.Selected())
	l.Swap()
	assert.Same(t, b, l.Selected())
	l.Swap()
	assert.Same(t, a, l.Selected())
	assert.Len(t, l.Slots(), 2)
}

func TestChargeShotEffect(t *testing.T) {
	cases := []struct {
		name       string
		crit       bool
		wantDamage float64
	}{
		{name: "normal", crit: false, wantDamage: 10},
		{name: "crit doubles", crit: true, wantDamage: 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spawner := &fakeSpawner{}
			e := ChargeShotEffect{Spawner: spawner, Crit: fixedCrit(tc.crit), BaseDamage: 5, Multiplier: 10}
			e.Activate(AbilityContext{Owner: 3, DirX: 1, Charge: 0.5})

			require.Len(t, spawner.calls, 1)
			p := spawner.calls[0].proj
			assert.Equal(t, component.ProjectileChargeShot, p.Kind)
			assert.Equal(t, tc.wantDamage, p.Damage)
			assert.Equal(t, tc.crit, p.Crit)
			assert.Equal(t, config.ProjectileRadius+1, p.Radius)
		})
	}
}

func TestGrenadeEffects(t *testing.T) {
	spawner := &fakeSpawner{}
	GrenadeEffect{Spawner: spawner, Damage: 12}.Activate(AbilityContext{DirY: -1})
	DOTGrenadeEffect{Spawner: spawner, DamagePerSec: 2}.Activate(AbilityContext{DirY: -1})

	require.Len(t, spawner.calls, 2)
	frag := spawner.calls[0].proj
	assert.Equal(t, component.ProjectileGrenade, frag.Kind)
	assert.Equal(t, 12.0, frag.Damage)
	assert.Equal(t, config.CloudRadius, frag.SplashRadius)

	dot := spawner.calls[1].proj
	assert.Equal(t, component.ProjectileDOTGrenade, dot.Kind)
	require.NotNil(t, dot.Cloud)
	assert.Equal(t, 2.0, dot.Cloud.DamagePerSec)
	assert.Equal(t, config.CloudDuration, dot.Cloud.Timer)
}
