// internal/system/state.go
package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
)

// StateSystem переключает фазу сессии по событиям ядра.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.GameLost, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.GameLost {
		s.SwitchToLost()
	}
}

// SwitchToLost фиксирует проигрыш и убирает снаряды с поля.
func (s *StateSystem) SwitchToLost() {
	if s.ecs.Phase == component.PhaseLost {
		return
	}
	s.ecs.Phase = component.PhaseLost
	for id := range s.ecs.Projectiles {
		s.ecs.DestroyEntity(id)
	}
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.Phase
}
