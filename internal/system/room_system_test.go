package system

import (
	"testing"

	"go-drosera/internal/component"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomRig struct {
	ecs     *entity.ECS
	sys     *RoomSystem
	events  *eventLog
	landing types.EntityID
	thicket types.EntityID
	vault   types.EntityID
	grunt   types.EntityID
	brawler types.EntityID
	guard   types.EntityID
}

func newRoomRig() *roomRig {
	ecs := entity.NewECS()
	r := &roomRig{ecs: ecs}
	r.landing = addRoom(ecs, "Landing", component.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	r.thicket = addRoom(ecs, "Thicket", component.Rect{X: 200, Y: 0, Width: 100, Height: 100})
	r.vault = addRoom(ecs, "Vault", component.Rect{X: 400, Y: 0, Width: 100, Height: 100})
	r.grunt = addEnemy(ecs, r.thicket, component.KindGrunt, component.Position{X: 220, Y: 50})
	r.brawler = addEnemy(ecs, r.thicket, component.KindBrawler, component.Position{X: 280, Y: 50})
	r.guard = addEnemy(ecs, r.vault, component.KindGrunt, component.Position{X: 450, Y: 50})
	addPlayer(ecs, component.Position{X: 50, Y: 50}, 5, 20)

	d := event.NewDispatcher()
	r.events = recordEvents(d, event.RoomEntered, event.RoomExited, event.ShotFired, event.EnemyAggroed)
	r.sys = NewRoomSystem(ecs, d)
	return r
}

func (r *roomRig) moveTo(x, y float64) {
	*r.ecs.Positions[r.ecs.PlayerID] = component.Position{X: x, Y: y}
	r.sys.Update(0.1)
}

func (r *roomRig) mode(id types.EntityID) component.EnemyMode {
	e, _ := r.ecs.Enemy(id)
	return e.Mode
}

func TestRoomSystem_GroupsOnlyForRoomsWithEnemies(t *testing.T) {
	r := newRoomRig()

	groups := r.sys.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, r.thicket, groups[0].Room)
	assert.Equal(t, r.vault, groups[1].Room)
	_, ok := r.sys.Group(r.landing)
	assert.False(t, ok)
}

func TestRoomSystem_TracksCurrentRoom(t *testing.T) {
	r := newRoomRig()

	r.sys.Update(0.1)
	assert.Equal(t, r.landing, r.ecs.Player.CurrentRoom)
	_, ok := r.sys.CurrentGroup()
	assert.False(t, ok)
	assert.Equal(t, 1, r.events.count(event.RoomEntered))
	assert.Zero(t, r.events.count(event.RoomExited))

	// Повторный тик в той же комнате ничего не рассылает
	r.sys.Update(0.1)
	assert.Equal(t, 1, r.events.count(event.RoomEntered))

	// Коридор сохраняет текущую комнату
	r.moveTo(150, 50)
	assert.Equal(t, r.landing, r.ecs.Player.CurrentRoom)

	r.moveTo(250, 50)
	assert.Equal(t, r.thicket, r.ecs.Player.CurrentRoom)
	g, ok := r.sys.CurrentGroup()
	require.True(t, ok)
	assert.Equal(t, "Thicket", g.Name)
	assert.Equal(t, 2, r.events.count(event.RoomEntered))
	assert.Equal(t, 1, r.events.count(event.RoomExited))
}

func TestRoomSystem_ExitCalmsAndEnterResets(t *testing.T) {
	r := newRoomRig()
	r.moveTo(250, 50)

	g, _ := r.sys.Group(r.thicket)
	g.TurnGroupAggressive.Invoke()
	*r.ecs.Positions[r.grunt] = component.Position{X: 290, Y: 90}

	r.moveTo(50, 50)
	assert.Equal(t, component.ModeIdle, r.mode(r.grunt))
	assert.Equal(t, component.ModeIdle, r.mode(r.brawler))

	r.moveTo(250, 50)
	assert.Equal(t, component.Position{X: 220, Y: 50}, *r.ecs.Positions[r.grunt])
}

func TestRoomSystem_ShotFiredReachesCurrentGroupOnly(t *testing.T) {
	r := newRoomRig()
	r.moveTo(250, 50)

	r.sys.ShotFired("primary")
	assert.Equal(t, component.ModeAggressive, r.mode(r.brawler))
	assert.Equal(t, component.ModeIdle, r.mode(r.grunt))
	assert.Equal(t, component.ModeIdle, r.mode(r.guard))

	require.Equal(t, 1, r.events.count(event.ShotFired))
	var shot event.Event
	for _, e := range r.events.events {
		if e.Type == event.ShotFired {
			shot = e
		}
	}
	assert.Equal(t, event.ShotData{Source: "primary", Room: r.thicket}, shot.Data)
}

func TestRoomSystem_ShotOutsideGroupsStillReported(t *testing.T) {
	r := newRoomRig()
	r.sys.Update(0.1)

	r.sys.ShotFired("frag")
	assert.Equal(t, 1, r.events.count(event.ShotFired))
	assert.Equal(t, component.ModeIdle, r.mode(r.brawler))
}

func TestRoomSystem_EnemyDamagedAggrosThatRoom(t *testing.T) {
	r := newRoomRig()

	r.sys.EnemyDamaged(r.vault)
	assert.Equal(t, component.ModeAggressive, r.mode(r.guard))
	assert.Equal(t, component.ModeIdle, r.mode(r.grunt))

	r.sys.EnemyDamaged(r.landing)
}

func TestRoomSystem_GrabHyperseedAlertsEveryGroup(t *testing.T) {
	r := newRoomRig()
	r.moveTo(450, 50)

	r.sys.GrabHyperseed()
	assert.Equal(t, component.ModeAggressive, r.mode(r.grunt))
	assert.Equal(t, component.ModeAggressive, r.mode(r.brawler))
	assert.Equal(t, component.ModeAggressive, r.mode(r.guard))

	// Уход из комнаты больше не успокаивает врагов
	r.moveTo(50, 50)
	assert.Equal(t, component.ModeAggressive, r.mode(r.guard))
}
