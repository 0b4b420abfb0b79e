// internal/system/status_effect.go
package system

import (
	"sort"

	"go-drosera/internal/entity"
	"go-drosera/internal/types"
)

// StatusEffectSystem управляет облаками урона, оставленными DOT-гранатами.
type StatusEffectSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewStatusEffectSystem(ecs *entity.ECS, combatSystem *CombatSystem) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, combatSystem: combatSystem}
}

// Update обрабатывает все активные облака.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	ids := make([]types.EntityID, 0, len(s.ecs.Clouds))
	for id := range s.ecs.Clouds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		cloud := s.ecs.Clouds[id]
		cloud.Timer -= deltaTime
		cloud.TickTimer -= deltaTime

		if cloud.TickTimer <= timerTolerance {
			if pos, ok := s.ecs.Positions[id]; ok {
				s.combatSystem.DamageEnemiesInRadius(*pos, cloud.Radius, cloud.DamagePerSec*cloud.TickInterval)
			}
			cloud.TickTimer += cloud.TickInterval
		}

		if cloud.Timer <= timerTolerance {
			s.ecs.DestroyEntity(id)
		}
	}
}
