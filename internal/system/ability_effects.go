// internal/system/ability_effects.go
package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/config"
)

// CritRoller решает, будет ли выстрел критическим.
type CritRoller interface {
	OneIn(n int) bool
}

// GrenadeEffect бросает осколочную гранату, взрывающуюся по площади.
type GrenadeEffect struct {
	Spawner ProjectileSpawner
	Damage  float64
}

func (e GrenadeEffect) Activate(ctx AbilityContext) {
	e.Spawner.Spawn(ctx.Owner, ctx.Origin, component.Projectile{
		Kind:         component.ProjectileGrenade,
		DirX:         ctx.DirX,
		DirY:         ctx.DirY,
		Speed:        config.GrenadeSpeed,
		Damage:       e.Damage,
		Radius:       config.GrenadeRadius,
		Lifespan:     config.GrenadeLifespan,
		SplashRadius: config.CloudRadius,
	})
}

// DOTGrenadeEffect бросает гранату, оставляющую облако урона.
type DOTGrenadeEffect struct {
	Spawner      ProjectileSpawner
	DamagePerSec float64
}

func (e DOTGrenadeEffect) Activate(ctx AbilityContext) {
	e.Spawner.Spawn(ctx.Owner, ctx.Origin, component.Projectile{
		Kind:     component.ProjectileDOTGrenade,
		DirX:     ctx.DirX,
		DirY:     ctx.DirY,
		Speed:    config.GrenadeSpeed,
		Radius:   config.GrenadeRadius,
		Lifespan: config.GrenadeLifespan,
		Cloud: &component.DamageCloud{
			Radius:       config.CloudRadius,
			DamagePerSec: e.DamagePerSec,
			Timer:        config.CloudDuration,
			TickInterval: config.CloudTickInterval,
			TickTimer:    config.CloudTickInterval,
		},
	})
}

// ChargeShotEffect — заряженный выстрел: урон растёт с зарядом,
// каждый N-й в среднем выстрел критический и наносит двойной урон.
type ChargeShotEffect struct {
	Spawner    ProjectileSpawner
	Crit       CritRoller
	BaseDamage float64
	Multiplier float64
}

func (e ChargeShotEffect) Activate(ctx AbilityContext) {
	damage := e.BaseDamage + ctx.Charge*e.Multiplier
	crit := e.Crit != nil && e.Crit.OneIn(config.ChargeShotCritChance)
	if crit {
		damage *= 2
	}
	e.Spawner.Spawn(ctx.Owner, ctx.Origin, component.Projectile{
		Kind:     component.ProjectileChargeShot,
		DirX:     ctx.DirX,
		DirY:     ctx.DirY,
		Speed:    config.ChargeShotSpeed,
		Damage:   damage,
		Radius:   config.ProjectileRadius + 2*ctx.Charge,
		Lifespan: config.ChargeShotLifespan,
		Crit:     crit,
	})
}
