// internal/app/game.go
package app

import (
	"fmt"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/defs"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/scheduler"
	"go-drosera/internal/system"
	"go-drosera/internal/utils"
	"go-drosera/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options — параметры сессии.
type Options struct {
	Input system.InputSource // nil — пустой ввод
	Seed  int64              // 0 — сид от текущего времени
}

// Game holds the main game state and logic.
type Game struct {
	SessionID          string
	Encounter          *defs.Encounter
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *scheduler.Scheduler
	Rng                *utils.PRNGService
	PlayerSystem       *system.PlayerSystem
	RoomSystem         *system.RoomSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	OreSystem          *system.OreSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	Kills              int

	lost bool
	log  *logrus.Entry
}

// NewGame initializes a new game instance from an encounter definition.
func NewGame(enc *defs.Encounter, opts Options) (*Game, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil encounter", defs.ErrInvalidEncounter)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		SessionID:       uuid.NewString(),
		Encounter:       enc,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       scheduler.New(),
		Rng:             utils.NewPRNGService(opts.Seed),
	}
	g.log = logger.Log.WithFields(logrus.Fields{"session": g.SessionID, "encounter": enc.Name})

	if err := g.createRoomEntities(); err != nil {
		return nil, err
	}
	g.createPlayerEntity()

	g.RoomSystem = system.NewRoomSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.RoomSystem)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.CombatSystem)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, g.CombatSystem)
	g.OreSystem = system.NewOreSystem(ecs, eventDispatcher, g.RoomSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, system.PlayerDeps{
		Dispatcher:   eventDispatcher,
		Scheduler:    g.Scheduler,
		Input:        opts.Input,
		Spawner:      g.ProjectileSystem,
		GameOver:     g,
		Shots:        g.RoomSystem,
		Interactions: g.OreSystem,
	})
	g.MovementSystem = system.NewMovementSystem(ecs, g.PlayerSystem)

	loadout, err := g.buildLoadout()
	if err != nil {
		return nil, err
	}
	g.PlayerSystem.SetLoadout(loadout)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyDestroyed, listener)
	eventDispatcher.Subscribe(event.HyperseedGrabbed, listener)

	g.log.WithFields(logrus.Fields{
		"rooms":  len(ecs.Rooms),
		"groups": len(g.RoomSystem.Groups()),
		"seed":   g.Rng.Seed(),
	}).Info("game created")
	return g, nil
}

// GameEventListener реагирует на события, важные для сессии целиком.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		l.game.Kills++
	case event.HyperseedGrabbed:
		l.game.log.Info("hyperseed grabbed")
	}
}

// Update продвигает симуляцию на один тик.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.ECS.GameTime += deltaTime
	// Часы планировщика идут вместе с GameTime: перезарядка, начатая
	// в этом тике, отсчитывается от текущего времени сессии.
	g.Scheduler.Advance(deltaTime)

	g.PlayerSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.StatusEffectSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.RoomSystem.Update(deltaTime)
	g.OreSystem.Update()
	g.VisualEffectSystem.Update(deltaTime)
}

// GameLost вызывается автоматом игрока каждый тик в состоянии Dead.
// Событие GameLost рассылается один раз.
func (g *Game) GameLost() {
	if g.lost {
		return
	}
	g.lost = true
	g.log.WithFields(logrus.Fields{"time": g.ECS.GameTime, "kills": g.Kills}).Info("game lost")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameLost})
}

// IsLost — сессия проиграна.
func (g *Game) IsLost() bool {
	return g.ECS.Phase == component.PhaseLost
}

// Player возвращает компонент игрока.
func (g *Game) Player() *component.Player {
	return g.ECS.Player
}

// PlayerHealth возвращает здоровье игрока.
func (g *Game) PlayerHealth() component.Health {
	if h, ok := g.ECS.Healths[g.ECS.PlayerID]; ok {
		return *h
	}
	return component.Health{}
}

// Loadout возвращает набор способностей игрока.
func (g *Game) Loadout() *system.AbilityLoadout {
	return g.PlayerSystem.Loadout()
}

// CurrentRoomName — имя комнаты, в которой находится игрок.
func (g *Game) CurrentRoomName() string {
	if room, ok := g.ECS.Rooms[g.ECS.Player.CurrentRoom]; ok {
		return room.Name
	}
	return ""
}

// GetGameTime возвращает время сессии в секундах.
func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}
