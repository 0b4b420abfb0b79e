package app

import (
	"testing"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/defs"
	"go-drosera/internal/event"
	"go-drosera/internal/system"
	"go-drosera/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, input system.InputSource) *Game {
	t.Helper()
	enc, err := defs.DefaultEncounter()
	require.NoError(t, err)
	g, err := NewGame(enc, Options{Input: input, Seed: 7})
	require.NoError(t, err)
	return g
}

func enemiesByKind(g *Game, kind component.EnemyKind) []*component.Enemy {
	var out []*component.Enemy
	for _, e := range g.ECS.Enemies {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestNewGame_BuildsEncounter(t *testing.T) {
	g := newTestGame(t, nil)

	assert.NotEmpty(t, g.SessionID)
	assert.Equal(t, int64(7), g.Rng.Seed())
	assert.Len(t, g.ECS.Rooms, 3)
	assert.Len(t, g.ECS.Enemies, 6)
	assert.Len(t, g.ECS.OreVeins, 3)
	assert.Len(t, g.ECS.Hyperseeds, 1)
	assert.Len(t, g.RoomSystem.Groups(), 2, "the landing room has no enemies")

	p := g.Player()
	assert.Equal(t, component.StateNeutral, p.State)
	assert.Equal(t, component.AmmoPool{Loaded: 5, Held: 20, Max: 20}, p.Ammo)
	assert.Equal(t, component.Position{X: 210, Y: 450}, g.ECS.PlayerPosition())
	assert.Equal(t, component.Health{Value: 20, Max: 20}, g.PlayerHealth())

	loadout := g.Loadout()
	require.Len(t, loadout.Slots(), 2)
	assert.Equal(t, "frag_grenade", loadout.Selected().ID)
	require.NotNil(t, loadout.AltFire)
	assert.Equal(t, "charge_shot", loadout.AltFire.ID)

	sentries := 0
	for _, e := range g.ECS.Enemies {
		if e.DefID == "SENTRY" {
			sentries++
			assert.Equal(t, component.ModeAggressive, e.Mode)
		}
	}
	assert.Equal(t, 1, sentries)
}

func TestNewGame_RejectsBrokenEncounters(t *testing.T) {
	_, err := NewGame(nil, Options{})
	assert.ErrorIs(t, err, defs.ErrInvalidEncounter)

	enc, err := defs.DefaultEncounter()
	require.NoError(t, err)
	enc.Rooms[1].Enemies[0].Def = "NOPE"
	_, err = NewGame(enc, Options{})
	assert.ErrorIs(t, err, defs.ErrInvalidEncounter)

	enc, err = defs.DefaultEncounter()
	require.NoError(t, err)
	enc.Player.AltFire = "laser"
	_, err = NewGame(enc, Options{})
	assert.ErrorIs(t, err, defs.ErrInvalidEncounter)
}

func TestGame_UpdateAdvancesClampedTime(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update(0)
	g.Update(-1)
	assert.Zero(t, g.GetGameTime())

	g.Update(1)
	assert.InDelta(t, config.MaxDeltaTime, g.GetGameTime(), 1e-12)
	assert.InDelta(t, config.MaxDeltaTime, g.Scheduler.Now(), 1e-12)
	assert.Equal(t, "Landing Site", g.CurrentRoomName())
}

func TestGame_DeathLosesOnce(t *testing.T) {
	g := newTestGame(t, nil)
	lost := 0
	g.EventDispatcher.SubscribeFunc(event.GameLost, func(event.Event) { lost++ })

	g.PlayerSystem.TakeDamage(100)
	for i := 0; i < 3; i++ {
		g.Update(config.FixedDeltaTime)
	}
	assert.Equal(t, 1, lost)
	assert.True(t, g.IsLost())
	assert.Equal(t, component.StateDead, g.Player().State)
}

func TestGame_ShotInRoomAggroesBrawlers(t *testing.T) {
	input := system.NewScriptedInput(system.Intent{}, system.Intent{Attack: true}, system.Intent{})
	g := newTestGame(t, input)
	*g.ECS.Positions[g.ECS.PlayerID] = component.Position{X: 480, Y: 130}

	g.Update(config.FixedDeltaTime)
	require.Equal(t, "Thicket", g.CurrentRoomName())
	g.Update(config.FixedDeltaTime)
	g.Update(config.FixedDeltaTime)

	assert.Equal(t, 4, g.Player().Ammo.Loaded)
	thicket := g.Player().CurrentRoom
	for _, e := range g.ECS.Enemies {
		if e.RoomID != thicket {
			continue
		}
		if e.Kind == component.KindBrawler {
			assert.Equal(t, component.ModeAggressive, e.Mode)
		} else {
			assert.Equal(t, component.ModeIdle, e.Mode)
		}
	}
	for _, e := range enemiesByKind(g, component.KindBrawler) {
		if e.RoomID != thicket {
			assert.Equal(t, component.ModeIdle, e.Mode, "other rooms do not hear the shot")
		}
	}
}

func TestGame_HyperseedAlertsWholeLevel(t *testing.T) {
	g := newTestGame(t, nil)
	var seed types.EntityID
	for id := range g.ECS.Hyperseeds {
		seed = id
	}

	require.True(t, g.OreSystem.Interact(seed))
	for _, e := range g.ECS.Enemies {
		assert.Equal(t, component.ModeAggressive, e.Mode)
	}
}

func TestGame_KillsCountDestroyedEnemies(t *testing.T) {
	g := newTestGame(t, nil)
	var victim types.EntityID
	for id := range g.ECS.Enemies {
		victim = id
		break
	}

	assert.True(t, g.CombatSystem.DamageEnemy(victim, 1000))
	assert.Equal(t, 1, g.Kills)
	assert.Len(t, g.ECS.Enemies, 5)
}

func TestGame_AbilityCooldownLastsFullDuration(t *testing.T) {
	input := system.NewScriptedInput(system.Intent{Ability: true})
	g := newTestGame(t, input)

	var started, finished []float64
	g.EventDispatcher.SubscribeFunc(event.CooldownStarted, func(e event.Event) {
		if data, ok := e.Data.(event.CooldownData); ok && data.Action == "frag_grenade" {
			started = append(started, g.GetGameTime())
		}
	})
	g.EventDispatcher.SubscribeFunc(event.CooldownFinished, func(e event.Event) {
		if data, ok := e.Data.(event.CooldownData); ok && data.Action == "frag_grenade" {
			finished = append(finished, g.GetGameTime())
		}
	})

	for i := 0; i < 140; i++ {
		g.Update(0.05)
	}

	require.NotEqual(t, component.StateDead, g.Player().State)
	require.Len(t, started, 1)
	require.Len(t, finished, 1)
	assert.InDelta(t, 0.1, started[0], 1e-9)
	assert.InDelta(t, 6.0, finished[0]-started[0], 1e-6)
	assert.False(t, g.Loadout().Selected().OnCooldown())
}

func TestNewGame_ZeroSeedIsPinnedForRestart(t *testing.T) {
	enc, err := defs.DefaultEncounter()
	require.NoError(t, err)

	first, err := NewGame(enc, Options{})
	require.NoError(t, err)
	seed := first.Rng.Seed()
	require.NotZero(t, seed)

	again, err := NewGame(enc, Options{Seed: seed})
	require.NoError(t, err)
	assert.Equal(t, seed, again.Rng.Seed())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Rng.Intn(1000), again.Rng.Intn(1000))
	}
}
