// internal/system/projectile.go
package system

import (
	"sort"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
	"go-drosera/internal/types"
)

// ProjectileSystem создаёт снаряды, двигает их и обрабатывает попадания.
type ProjectileSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewProjectileSystem(ecs *entity.ECS, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:          ecs,
		combatSystem: combatSystem,
	}
}

// Spawn создаёт снаряд в точке at.
func (s *ProjectileSystem) Spawn(owner types.EntityID, at component.Position, proj component.Projectile) {
	id := s.ecs.NewEntity()
	proj.Owner = owner
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Projectiles[id] = &proj

	color := config.ProjectileColor
	switch {
	case proj.Crit:
		color = config.CritColor
	case proj.Kind == component.ProjectileGrenade || proj.Kind == component.ProjectileDOTGrenade:
		color = config.GrenadeColor
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: color, Radius: float32(proj.Radius)}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	// Стабильный порядок: попадания меняют карту врагов
	ids := make([]types.EntityID, 0, len(s.ecs.Projectiles))
	for id := range s.ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		pos.X += proj.DirX * proj.Speed * deltaTime
		pos.Y += proj.DirY * proj.Speed * deltaTime
		proj.Lifespan -= deltaTime

		if target, ok := s.findTarget(*pos, proj.Radius); ok {
			s.hitTarget(id, proj, target, *pos)
			continue
		}

		if proj.Lifespan <= 0 || !s.onScreen(*pos) {
			if isGrenade(proj) {
				s.explode(proj, *pos)
			}
			s.removeProjectile(id)
		}
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}

func (s *ProjectileSystem) findTarget(at component.Position, radius float64) (types.EntityID, bool) {
	best := types.None
	bestDist := radius + config.EnemyRadius
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		d := pos.DistanceTo(at)
		if d < bestDist || (d == bestDist && best != types.None && id < best) {
			best, bestDist = id, d
		}
	}
	return best, best != types.None
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, target types.EntityID, at component.Position) {
	if isGrenade(proj) {
		s.explode(proj, at)
	} else {
		s.combatSystem.DamageEnemy(target, proj.Damage)
	}
	s.removeProjectile(projectileID)
}

// explode — взрыв гранаты: урон по площади или облако урона.
func (s *ProjectileSystem) explode(proj *component.Projectile, at component.Position) {
	if proj.Cloud != nil {
		id := s.ecs.NewEntity()
		cloud := *proj.Cloud
		s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
		s.ecs.Clouds[id] = &cloud
		s.ecs.Renderables[id] = &component.Renderable{Color: config.CloudColor, Radius: float32(cloud.Radius)}
		return
	}
	if proj.SplashRadius > 0 && proj.Damage > 0 {
		s.combatSystem.DamageEnemiesInRadius(at, proj.SplashRadius, proj.Damage)
	}
}

func (s *ProjectileSystem) onScreen(p component.Position) bool {
	return p.X >= 0 && p.X <= config.ScreenWidth && p.Y >= 0 && p.Y <= config.ScreenHeight
}

func isGrenade(proj *component.Projectile) bool {
	return proj.Kind == component.ProjectileGrenade || proj.Kind == component.ProjectileDOTGrenade
}
