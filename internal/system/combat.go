// internal/system/combat.go
package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/types"
	"go-drosera/pkg/logger"

	"github.com/sirupsen/logrus"
)

// EnemyDamageNotifier передаёт попадание по врагу в его группу.
type EnemyDamageNotifier interface {
	EnemyDamaged(roomID types.EntityID)
}

// CombatSystem наносит урон врагам и убирает погибших.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	groups     EnemyDamageNotifier
	log        *logrus.Entry
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, groups EnemyDamageNotifier) *CombatSystem {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &CombatSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		groups:     groups,
		log:        logger.For("combat"),
	}
}

// DamageEnemy наносит урон врагу. Возвращает true, если враг погиб.
// Уничтоженный враг пропускается.
func (s *CombatSystem) DamageEnemy(id types.EntityID, amount float64) bool {
	enemy, ok := s.ecs.Enemy(id)
	if !ok || amount <= 0 {
		return false
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}

	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}
	s.ecs.DamageFlashes[id] = &component.DamageFlash{Duration: config.DamageFlashTime}

	data := event.EnemyData{Enemy: id, Room: enemy.RoomID, Kind: string(enemy.Kind), Amount: amount}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: data})

	// Группа узнаёт о попадании до удаления врага, чтобы соседи успели агриться
	if s.groups != nil {
		s.groups.EnemyDamaged(enemy.RoomID)
	}

	if health.Alive() {
		return false
	}
	s.ecs.DestroyEntity(id)
	s.log.WithFields(logrus.Fields{"enemy": id, "kind": enemy.Kind}).Debug("enemy destroyed")
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
	return true
}

// DamageEnemiesInRadius наносит урон всем врагам в круге и возвращает число задетых.
func (s *CombatSystem) DamageEnemiesInRadius(center component.Position, radius, amount float64) int {
	var hit []types.EntityID
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if pos.DistanceTo(center) <= radius+config.EnemyRadius {
			hit = append(hit, id)
		}
	}
	// Урон наносится после обхода карты: DamageEnemy удаляет из неё погибших
	for _, id := range hit {
		s.DamageEnemy(id, amount)
	}
	return len(hit)
}
