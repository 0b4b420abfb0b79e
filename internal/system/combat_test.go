package system

import (
	"testing"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombat_DamageEnemyNotifiesGroupAndDestroys(t *testing.T) {
	ecs := entity.NewECS()
	room := addRoom(ecs, "Thicket", component.Rect{Width: 400, Height: 400})
	target := addEnemy(ecs, room, component.KindGrunt, component.Position{X: 50, Y: 50})
	buddy := addEnemy(ecs, room, component.KindGrunt, component.Position{X: 90, Y: 50})
	d := event.NewDispatcher()
	events := recordEvents(d, event.EnemyDamaged, event.EnemyDestroyed)
	rooms := NewRoomSystem(ecs, d)
	combat := NewCombatSystem(ecs, d, rooms)

	assert.False(t, combat.DamageEnemy(target, 5))
	assert.Equal(t, 10.0, ecs.Healths[target].Value)
	require.Contains(t, ecs.DamageFlashes, target)
	assert.Equal(t, config.DamageFlashTime, ecs.DamageFlashes[target].Duration)
	assert.Equal(t, 1, events.count(event.EnemyDamaged))

	other, _ := ecs.Enemy(buddy)
	assert.Equal(t, component.ModeAggressive, other.Mode, "damage aggroes the whole room")

	assert.True(t, combat.DamageEnemy(target, 50))
	_, alive := ecs.Enemy(target)
	assert.False(t, alive)
	assert.NotContains(t, ecs.Healths, target)
	assert.Equal(t, 1, events.count(event.EnemyDestroyed))

	assert.False(t, combat.DamageEnemy(target, 5), "destroyed enemies are skipped")
	assert.False(t, combat.DamageEnemy(buddy, 0))
	assert.Equal(t, 2, events.count(event.EnemyDamaged))
}

func TestCombat_DamageEnemiesInRadius(t *testing.T) {
	ecs := entity.NewECS()
	near := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 100, Y: 100})
	edge := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 100 + 30 + config.EnemyRadius, Y: 100})
	far := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 300, Y: 100})
	combat := NewCombatSystem(ecs, nil, nil)

	hit := combat.DamageEnemiesInRadius(component.Position{X: 100, Y: 100}, 30, 15)
	assert.Equal(t, 2, hit)
	_, ok := ecs.Enemy(near)
	assert.False(t, ok)
	_, ok = ecs.Enemy(edge)
	assert.False(t, ok)
	assert.Equal(t, 15.0, ecs.Healths[far].Value)
}

func TestProjectile_BulletHitsEnemy(t *testing.T) {
	ecs := entity.NewECS()
	enemy := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 130, Y: 100})
	projectiles := NewProjectileSystem(ecs, NewCombatSystem(ecs, nil, nil))

	projectiles.Spawn(9, component.Position{X: 100, Y: 100}, component.Projectile{
		Kind: component.ProjectileBullet, DirX: 1, Speed: 600, Damage: 5, Radius: 4, Lifespan: 1.5,
	})
	require.Len(t, ecs.Projectiles, 1)
	for _, p := range ecs.Projectiles {
		assert.Equal(t, 9, int(p.Owner))
	}

	projectiles.Update(0.05)
	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, 10.0, ecs.Healths[enemy].Value)
}

func TestProjectile_ExpiresAndLeavesScreen(t *testing.T) {
	ecs := entity.NewECS()
	projectiles := NewProjectileSystem(ecs, NewCombatSystem(ecs, nil, nil))

	projectiles.Spawn(1, component.Position{X: 100, Y: 100}, component.Projectile{DirX: 1, Speed: 10, Radius: 4, Lifespan: 0.1})
	projectiles.Spawn(1, component.Position{X: config.ScreenWidth - 1, Y: 100}, component.Projectile{DirX: 1, Speed: 600, Radius: 4, Lifespan: 5})
	require.Len(t, ecs.Projectiles, 2)

	projectiles.Update(0.1)
	assert.Empty(t, ecs.Projectiles)
	assert.Empty(t, ecs.Renderables)
}

func TestProjectile_RenderColors(t *testing.T) {
	ecs := entity.NewECS()
	projectiles := NewProjectileSystem(ecs, NewCombatSystem(ecs, nil, nil))

	projectiles.Spawn(1, component.Position{}, component.Projectile{Kind: component.ProjectileChargeShot, Crit: true, Radius: 5})
	projectiles.Spawn(1, component.Position{}, component.Projectile{Kind: component.ProjectileDOTGrenade, Radius: 6})

	colors := map[bool]int{}
	for id, p := range ecs.Projectiles {
		r := ecs.Renderables[id]
		if p.Crit {
			assert.Equal(t, config.CritColor, r.Color)
		} else {
			assert.Equal(t, config.GrenadeColor, r.Color)
		}
		colors[p.Crit]++
	}
	assert.Equal(t, map[bool]int{true: 1, false: 1}, colors)
}

func TestProjectile_GrenadeSplashOnExpiry(t *testing.T) {
	ecs := entity.NewECS()
	near := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 150, Y: 100})
	far := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 300, Y: 100})
	projectiles := NewProjectileSystem(ecs, NewCombatSystem(ecs, nil, nil))

	projectiles.Spawn(1, component.Position{X: 100, Y: 100}, component.Projectile{
		Kind: component.ProjectileGrenade, Radius: 6, Lifespan: 0.1, Damage: 12, SplashRadius: 70,
	})
	projectiles.Update(0.1)

	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, 3.0, ecs.Healths[near].Value)
	assert.Equal(t, 15.0, ecs.Healths[far].Value)
}

func TestDOTGrenadeLeavesDamagingCloud(t *testing.T) {
	ecs := entity.NewECS()
	enemy := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 150, Y: 100})
	combat := NewCombatSystem(ecs, nil, nil)
	projectiles := NewProjectileSystem(ecs, combat)
	clouds := NewStatusEffectSystem(ecs, combat)

	projectiles.Spawn(1, component.Position{X: 100, Y: 100}, component.Projectile{
		Kind: component.ProjectileDOTGrenade, Radius: 6, Lifespan: 0.1,
		Cloud: &component.DamageCloud{Radius: 70, DamagePerSec: 2, Timer: 4, TickInterval: 1, TickTimer: 1},
	})
	projectiles.Update(0.1)
	require.Len(t, ecs.Clouds, 1)
	for id := range ecs.Clouds {
		assert.Equal(t, config.CloudColor, ecs.Renderables[id].Color)
		assert.Equal(t, component.Position{X: 100, Y: 100}, *ecs.Positions[id])
	}
	assert.Equal(t, 15.0, ecs.Healths[enemy].Value, "the cloud has not ticked yet")

	for i := 0; i < 3; i++ {
		clouds.Update(1)
		require.Len(t, ecs.Clouds, 1)
	}
	assert.Equal(t, 9.0, ecs.Healths[enemy].Value)

	clouds.Update(1)
	assert.Empty(t, ecs.Clouds)
	assert.Equal(t, 7.0, ecs.Healths[enemy].Value)
}

func TestMovement_AggressiveEnemyChasesAndHits(t *testing.T) {
	ecs := entity.NewECS()
	addPlayer(ecs, component.Position{X: 100, Y: 0}, 5, 20)
	id := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 0, Y: 0})
	enemy, _ := ecs.Enemy(id)
	enemy.Mode = component.ModeAggressive
	target := &fakeTarget{}
	movement := NewMovementSystem(ecs, target)

	movement.Update(0.5)
	assert.InDelta(t, 60, ecs.Positions[id].X, 1e-9)
	movement.Update(0.5)
	assert.InDelta(t, 76, ecs.Positions[id].X, 1e-9, "stops at contact range")
	assert.Empty(t, target.damage)

	movement.Update(0.5)
	assert.Equal(t, []float64{1}, target.damage)
	movement.Update(0.5)
	assert.Len(t, target.damage, 1, "attack cooldown")
	movement.Update(0.5)
	assert.Len(t, target.damage, 2)
}

func TestMovement_IdleOrOrphanedEnemiesGoHome(t *testing.T) {
	ecs := entity.NewECS()
	addPlayer(ecs, component.Position{X: 500, Y: 0}, 5, 20)
	idle := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 0, Y: 0})
	*ecs.Positions[idle] = component.Position{X: 50, Y: 0}
	chaser := addEnemy(ecs, 0, component.KindGrunt, component.Position{X: 400, Y: 0})
	*ecs.Positions[chaser] = component.Position{X: 450, Y: 0}
	e, _ := ecs.Enemy(chaser)
	e.Mode = component.ModeAggressive
	ecs.Player.State = component.StateDead
	movement := NewMovementSystem(ecs, &fakeTarget{})

	movement.Update(0.5)
	assert.InDelta(t, config.EnemyHomeTolerance, ecs.Positions[idle].X, 1e-9)
	assert.InDelta(t, 400+config.EnemyHomeTolerance, ecs.Positions[chaser].X, 1e-9, "a dead player is not chased")
}

func TestVisualEffect_FlashesExpireAndCloudsShrink(t *testing.T) {
	ecs := entity.NewECS()
	flash, cloud := types.EntityID(1), types.EntityID(2)
	ecs.DamageFlashes[flash] = &component.DamageFlash{Duration: 0.25}
	ecs.Clouds[cloud] = &component.DamageCloud{Radius: 70, Timer: config.CloudDuration / 2}
	ecs.Renderables[cloud] = &component.Renderable{Radius: 70}
	fx := NewVisualEffectSystem(ecs)

	fx.Update(0.125)
	assert.Contains(t, ecs.DamageFlashes, flash)
	fx.Update(0.125)
	assert.NotContains(t, ecs.DamageFlashes, flash)
	assert.InDelta(t, 52.5, ecs.Renderables[cloud].Radius, 1e-4)
}

func TestStateSystem_GameLostClearsProjectiles(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	states := NewStateSystem(ecs, d)
	NewProjectileSystem(ecs, nil).Spawn(1, component.Position{}, component.Projectile{Lifespan: 1})
	require.Len(t, ecs.Projectiles, 1)

	d.Dispatch(event.Event{Type: event.GameLost})
	assert.Equal(t, component.PhaseLost, states.Current())
	assert.Empty(t, ecs.Projectiles)
	assert.Empty(t, ecs.Renderables)

	states.SwitchToLost()
	assert.Equal(t, component.PhaseLost, states.Current())
}
