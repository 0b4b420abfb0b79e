package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/types"
)

// eventLog собирает события диспетчера в порядке рассылки.
type eventLog struct {
	events []event.Event
}

func recordEvents(d *event.Dispatcher, eventTypes ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range eventTypes {
		d.SubscribeFunc(t, func(e event.Event) { l.events = append(l.events, e) })
	}
	return l
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) cooldowns(t event.EventType, action string) int {
	n := 0
	for _, e := range l.events {
		if data, ok := e.Data.(event.CooldownData); ok && e.Type == t && data.Action == action {
			n++
		}
	}
	return n
}

type spawnCall struct {
	owner types.EntityID
	at    component.Position
	proj  component.Projectile
}

type fakeSpawner struct {
	calls []spawnCall
}

func (f *fakeSpawner) Spawn(owner types.EntityID, at component.Position, proj component.Projectile) {
	f.calls = append(f.calls, spawnCall{owner: owner, at: at, proj: proj})
}

type fakeGameOver struct {
	calls int
}

func (f *fakeGameOver) GameLost() { f.calls++ }

type fakeShots struct {
	sources []string
}

func (f *fakeShots) ShotFired(source string) { f.sources = append(f.sources, source) }

type fakeTarget struct {
	damage []float64
}

func (f *fakeTarget) TakeDamage(amount float64) { f.damage = append(f.damage, amount) }

type fixedCrit bool

func (c fixedCrit) OneIn(int) bool { return bool(c) }

func testTuning() component.PlayerTuning {
	return component.PlayerTuning{
		MoveSpeed:           220,
		DodgeSpeed:          900,
		DodgeTime:           0.2,
		DodgeCooldownTime:   2.0,
		AbilityCooldownTime: 6.0,
		InteractCooldown:    0.2,
		ReloadCooldownTime:  1.0,
		AmmoPerOre:          1,
	}
}

// addPlayer создаёт игрока в точке at.
func addPlayer(ecs *entity.ECS, at component.Position, loaded, held int) *component.Player {
	id := ecs.NewEntity()
	ecs.PlayerID = id
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Healths[id] = &component.Health{Value: 20, Max: 20}
	ecs.Player = &component.Player{
		State:        component.StateNeutral,
		Ammo:         component.AmmoPool{Loaded: loaded, Held: held, Max: 20},
		Tuning:       testTuning(),
		LastInteract: -1e9,
		FacingX:      1,
	}
	return ecs.Player
}

func addRoom(ecs *entity.ECS, name string, bounds component.Rect) types.EntityID {
	id := ecs.NewEntity()
	ecs.Rooms[id] = &component.Room{Name: name, Bounds: bounds}
	return id
}

func addEnemy(ecs *entity.ECS, room types.EntityID, kind component.EnemyKind, at component.Position) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Healths[id] = &component.Health{Value: 15, Max: 15}
	ecs.Enemies[id] = &component.Enemy{
		Kind:          kind,
		RoomID:        room,
		Home:          at,
		ContactDamage: 1,
		AttackCool:    1,
	}
	return id
}
