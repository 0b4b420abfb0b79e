// internal/app/loadout.go
package app

import (
	"fmt"

	"go-drosera/internal/config"
	"go-drosera/internal/defs"
	"go-drosera/internal/system"
)

// buildLoadout создаёт способности игрока по определениям уровня.
func (g *Game) buildLoadout() (*system.AbilityLoadout, error) {
	library := g.Encounter.AbilityByID()
	deps := system.AbilityDeps{
		Owner:      g.ECS.PlayerID,
		Ammo:       &g.ECS.Player.Ammo,
		Scheduler:  g.Scheduler,
		Dispatcher: g.EventDispatcher,
		Shots:      g.RoomSystem,
	}

	slots := make([]*system.Ability, 0, len(g.Encounter.Player.Loadout))
	for _, id := range g.Encounter.Player.Loadout {
		def, ok := library[id]
		if !ok {
			return nil, fmt.Errorf("%w: loadout references unknown ability %q", defs.ErrInvalidEncounter, id)
		}
		slots = append(slots, system.NewAbility(def.ID, def.Name, def.Cooldown, def.AmmoCost, g.abilityEffect(def), deps))
	}

	var altFire *system.Ability
	if id := g.Encounter.Player.AltFire; id != "" {
		def, ok := library[id]
		if !ok {
			return nil, fmt.Errorf("%w: alt fire references unknown ability %q", defs.ErrInvalidEncounter, id)
		}
		altFire = system.NewAbility(def.ID, def.Name, def.Cooldown, def.AmmoCost, g.abilityEffect(def), deps)
	}

	return system.NewAbilityLoadout(altFire, slots...), nil
}

func (g *Game) abilityEffect(def defs.AbilityDefinition) system.AbilityEffect {
	switch def.Effect {
	case defs.EffectDOTGrenade:
		return system.DOTGrenadeEffect{Spawner: g.ProjectileSystem, DamagePerSec: orDefault(def.Damage, config.CloudDamagePerSec)}
	case defs.EffectChargeShot:
		return system.ChargeShotEffect{
			Spawner:    g.ProjectileSystem,
			Crit:       g.Rng,
			BaseDamage: config.ChargeShotBaseDamage,
			Multiplier: orDefault(def.Damage, config.ChargeShotMultiplier),
		}
	default:
		return system.GrenadeEffect{Spawner: g.ProjectileSystem, Damage: def.Damage}
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
