// internal/system/enemy_group.go
package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/types"
	"go-drosera/pkg/logger"

	"github.com/sirupsen/logrus"
)

// EnemyGroup связывает врагов одной комнаты через широковещательные каналы.
// Подписки создаются один раз в NewEnemyGroup и дальше только снимаются.
type EnemyGroup struct {
	Room types.EntityID
	Name string

	OnEnemyDamage       *event.Channel
	OnShotFired         *event.Channel
	GrabHyperseed       *event.Channel
	TurnGroupAggressive *event.Channel
	TurnGroupPassive    *event.Channel
	OnPlayerEnter       *event.Channel
	OnPlayerExit        *event.Channel

	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	members    []types.EntityID
	log        *logrus.Entry
}

// NewEnemyGroup собирает группу из всех врагов комнаты и подписывает их на каналы.
func NewEnemyGroup(ecs *entity.ECS, dispatcher *event.Dispatcher, roomID types.EntityID) *EnemyGroup {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	name := ""
	if room, ok := ecs.Rooms[roomID]; ok {
		name = room.Name
	}
	g := &EnemyGroup{
		Room:                roomID,
		Name:                name,
		OnEnemyDamage:       event.NewOneShotChannel("on_enemy_damage"),
		OnShotFired:         event.NewOneShotChannel("on_shot_fired"),
		GrabHyperseed:       event.NewChannel("grab_hyperseed"),
		TurnGroupAggressive: event.NewChannel("turn_group_aggressive"),
		TurnGroupPassive:    event.NewChannel("turn_group_passive"),
		OnPlayerEnter:       event.NewChannel("on_player_enter"),
		OnPlayerExit:        event.NewChannel("on_player_exit"),
		ecs:                 ecs,
		dispatcher:          dispatcher,
		members:             ecs.EnemiesInRoom(roomID),
		log:                 logger.For("enemy_group").WithField("room", name),
	}

	g.addDebugCalls()

	for _, id := range g.members {
		id := id
		g.GrabHyperseed.Subscribe(func() { g.setMode(id, component.ModeAggressive) })
		g.TurnGroupAggressive.Subscribe(func() { g.setMode(id, component.ModeAggressive) })
		g.TurnGroupPassive.Subscribe(func() { g.setMode(id, component.ModeIdle) })
		g.OnEnemyDamage.Subscribe(func() { g.setMode(id, component.ModeAggressive) })
		g.OnPlayerExit.Subscribe(func() { g.setMode(id, component.ModeIdle) })
		g.OnPlayerEnter.Subscribe(func() { g.resetEnemy(id) })

		if e, ok := ecs.Enemy(id); ok && e.Kind == component.KindBrawler {
			g.OnShotFired.Subscribe(func() { g.setMode(id, component.ModeAggressive) })
		}
	}

	// После подбора гиперсемени группа больше не реагирует на обычные сигналы
	g.GrabHyperseed.Subscribe(func() {
		g.OnEnemyDamage.Disarm()
		g.OnShotFired.Disarm()
		g.OnPlayerEnter.Disarm()
		g.OnPlayerExit.Disarm()
	})

	return g
}

// Members возвращает дескрипторы врагов группы, включая уже уничтоженных.
func (g *EnemyGroup) Members() []types.EntityID { return g.members }

// LiveMembers — число ещё существующих врагов.
func (g *EnemyGroup) LiveMembers() int {
	n := 0
	for _, id := range g.members {
		if _, ok := g.ecs.Enemy(id); ok {
			n++
		}
	}
	return n
}

func (g *EnemyGroup) addDebugCalls() {
	g.OnShotFired.Subscribe(func() { g.log.Debug("shot fired detected") })
	g.OnEnemyDamage.Subscribe(func() { g.log.Debug("enemy damage detected") })
	g.GrabHyperseed.Subscribe(func() { g.log.Debug("hyperseed grab detected") })
	g.OnPlayerEnter.Subscribe(func() { g.log.Debug("player entered") })
	g.OnPlayerExit.Subscribe(func() { g.log.Debug("player exited") })
}

func (g *EnemyGroup) setMode(id types.EntityID, mode component.EnemyMode) {
	e, ok := g.ecs.Enemy(id)
	if !ok {
		return
	}
	if e.Mode == mode {
		return
	}
	e.Mode = mode
	if mode == component.ModeAggressive {
		g.dispatcher.Dispatch(event.Event{
			Type: event.EnemyAggroed,
			Data: event.EnemyData{Enemy: id, Room: g.Room, Kind: string(e.Kind)},
		})
	}
}

// resetEnemy возвращает врага в исходное «пробуждённое» состояние.
func (g *EnemyGroup) resetEnemy(id types.EntityID) {
	e, ok := g.ecs.Enemy(id)
	if !ok {
		return
	}
	wasAggressive := e.Mode == component.ModeAggressive
	e.Reset()
	if pos, ok := g.ecs.Positions[id]; ok {
		*pos = e.Home
	}
	if !wasAggressive && e.Mode == component.ModeAggressive {
		g.dispatcher.Dispatch(event.Event{
			Type: event.EnemyAggroed,
			Data: event.EnemyData{Enemy: id, Room: g.Room, Kind: string(e.Kind)},
		})
	}
}
