// internal/system/visual_effect.go
package system

import (
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
	"go-drosera/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Облака постепенно тают: радиус отрисовки следует за оставшимся временем
	for id, cloud := range s.ecs.Clouds {
		if renderable, ok := s.ecs.Renderables[id]; ok {
			fade := 0.5 + 0.5*utils.Clamp(cloud.Timer/config.CloudDuration, 0, 1)
			renderable.Radius = float32(cloud.Radius * fade)
		}
	}
}
