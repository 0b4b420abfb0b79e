// internal/system/movement.go
package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
)

// MovementSystem двигает врагов: агрессивные преследуют игрока и бьют
// его при контакте, спокойные возвращаются к точке появления.
type MovementSystem struct {
	ecs    *entity.ECS
	target Damageable
}

func NewMovementSystem(ecs *entity.ECS, target Damageable) *MovementSystem {
	return &MovementSystem{ecs: ecs, target: target}
}

func (s *MovementSystem) Update(deltaTime float64) {
	playerPos := s.ecs.PlayerPosition()
	playerAlive := s.ecs.Player != nil && s.ecs.Player.State != component.StateDead

	for id, enemy := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		speed := config.DefaultEnemySpeed
		if vel, ok := s.ecs.Velocities[id]; ok {
			speed = vel.Speed
		}
		if enemy.AttackTimer > 0 {
			enemy.AttackTimer -= deltaTime
		}

		if enemy.Mode != component.ModeAggressive || !playerAlive {
			moveTowards(pos, enemy.Home, speed*deltaTime, config.EnemyHomeTolerance)
			continue
		}

		if pos.DistanceTo(playerPos) > config.EnemyContactRange {
			moveTowards(pos, playerPos, speed*deltaTime, config.EnemyContactRange)
			continue
		}

		if enemy.AttackTimer <= 0 && s.target != nil {
			s.target.TakeDamage(enemy.ContactDamage)
			enemy.AttackTimer = enemy.AttackCool
		}
	}
}

// moveTowards сдвигает pos к цели не более чем на step, останавливаясь на расстоянии stopAt.
func moveTowards(pos *component.Position, target component.Position, step, stopAt float64) {
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := pos.DistanceTo(target)
	if dist <= stopAt || dist == 0 {
		return
	}
	if travel := dist - stopAt; step > travel {
		step = travel
	}
	pos.X += (dx / dist) * step
	pos.Y += (dy / dist) * step
}
