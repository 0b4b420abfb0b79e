// internal/system/ore.go
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

// HyperseedNotifier поднимает тревогу во всех группах врагов.
type HyperseedNotifier interface {
	GrabHyperseed()
}

// OreSystem обслуживает взаимодействия игрока: добычу руды и подбор гиперсемени.
type OreSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	alarm      HyperseedNotifier
	log        *logrus.Entry
}

// NewOreSystem creates a new OreSystem.
func NewOreSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, alarm HyperseedNotifier) *OreSystem {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &OreSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		alarm:      alarm,
		log:        logger.For("ore"),
	}
}

// Target возвращает ближайший объект взаимодействия в радиусе досягаемости.
// Выработанные жилы и подобранное гиперсемя не учитываются.
func (s *OreSystem) Target() (types.EntityID, bool) {
	playerPos := s.ecs.PlayerPosition()
	best := types.None
	bestDist := config.InteractRange

	consider := func(id types.EntityID) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			return
		}
		d := pos.DistanceTo(playerPos)
		if d < bestDist || (d == bestDist && (best == types.None || id < best)) {
			best, bestDist = id, d
		}
	}
	for id, vein := range s.ecs.OreVeins {
		if !vein.Depleted() {
			consider(id)
		}
	}
	for id, seed := range s.ecs.Hyperseeds {
		if !seed.Grabbed {
			consider(id)
		}
	}
	return best, best != types.None
}

// Interact выполняет взаимодействие с целью. Возвращает false, если с ней
// больше ничего нельзя сделать.
func (s *OreSystem) Interact(target types.EntityID) bool {
	if vein, ok := s.ecs.OreVeins[target]; ok {
		return s.mine(target, vein)
	}
	if seed, ok := s.ecs.Hyperseeds[target]; ok {
		return s.grab(target, seed)
	}
	return false
}

func (s *OreSystem) mine(id types.EntityID, vein *component.OreVein) bool {
	p := s.ecs.Player
	if p == nil || vein.Depleted() {
		return false
	}
	vein.Uses--
	// Руда идёт сразу в магазин, без ограничения Max
	p.Ammo.AddLoaded(p.Tuning.AmmoPerOre)
	s.dispatcher.Dispatch(event.Event{
		Type: event.OreMined,
		Data: event.OreData{Vein: id, Ammo: p.Tuning.AmmoPerOre, UsesLeft: vein.Uses},
	})
	s.log.WithFields(logrus.Fields{"vein": id, "uses_left": vein.Uses, "loaded": p.Ammo.Loaded}).Debug("ore mined")
	return true
}

func (s *OreSystem) grab(id types.EntityID, seed *component.Hyperseed) bool {
	if seed.Grabbed {
		return false
	}
	seed.Grabbed = true
	delete(s.ecs.Renderables, id)
	if s.alarm != nil {
		s.alarm.GrabHyperseed()
	}
	s.dispatcher.Dispatch(event.Event{Type: event.HyperseedGrabbed, Data: id})
	return true
}

// Update is called every frame to update the state of ore components.
// Жила сжимается по мере выработки.
func (s *OreSystem) Update() {
	for id, vein := range s.ecs.OreVeins {
		renderable, ok := s.ecs.Renderables[id]
		if !ok || vein.MaxUses <= 0 {
			continue
		}
		if vein.Depleted() {
			renderable.Color = config.HealthEmptyColor
			continue
		}
		share := float64(vein.Uses) / float64(vein.MaxUses)
		renderable.Radius = float32(config.OreRadius * (0.5 + 0.5*share))
	}
}
