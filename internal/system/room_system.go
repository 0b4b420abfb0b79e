// internal/system/room_system.go
package system

import (
	"sort"

	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/types"
	"go-drosera/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RoomSystem следит за тем, в какой комнате находится игрок,
// и переводит переходы между комнатами в сигналы групп врагов.
type RoomSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	groups     map[types.EntityID]*EnemyGroup
	log        *logrus.Entry
}

// NewRoomSystem строит по группе на каждую комнату, в которой есть враги.
func NewRoomSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *RoomSystem {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	s := &RoomSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		groups:     make(map[types.EntityID]*EnemyGroup),
		log:        logger.For("room"),
	}
	for roomID := range ecs.Rooms {
		if len(ecs.EnemiesInRoom(roomID)) == 0 {
			continue
		}
		s.groups[roomID] = NewEnemyGroup(ecs, dispatcher, roomID)
	}
	return s
}

// Group возвращает группу комнаты, если она есть.
func (s *RoomSystem) Group(roomID types.EntityID) (*EnemyGroup, bool) {
	g, ok := s.groups[roomID]
	return g, ok
}

// Groups возвращает все группы в порядке идентификаторов комнат.
func (s *RoomSystem) Groups() []*EnemyGroup {
	ids := make([]types.EntityID, 0, len(s.groups))
	for id := range s.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	groups := make([]*EnemyGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, s.groups[id])
	}
	return groups
}

// CurrentGroup — группа комнаты, в которой сейчас игрок.
func (s *RoomSystem) CurrentGroup() (*EnemyGroup, bool) {
	if s.ecs.Player == nil || s.ecs.Player.CurrentRoom == types.None {
		return nil, false
	}
	return s.Group(s.ecs.Player.CurrentRoom)
}

// Update определяет комнату по позиции игрока. В коридоре между
// комнатами текущая комната не меняется.
func (s *RoomSystem) Update(deltaTime float64) {
	if s.ecs.Player == nil {
		return
	}
	roomID, ok := s.ecs.RoomAt(s.ecs.PlayerPosition())
	if !ok || roomID == s.ecs.Player.CurrentRoom {
		return
	}
	s.EnterRoom(roomID)
}

// EnterRoom выполняет протокол перехода: OnPlayerExit старой группы,
// OnPlayerEnter новой, запись комнаты на игроке.
func (s *RoomSystem) EnterRoom(roomID types.EntityID) {
	p := s.ecs.Player
	if p == nil {
		return
	}
	prev := p.CurrentRoom

	if prev != types.None {
		if g, ok := s.groups[prev]; ok {
			g.OnPlayerExit.Invoke()
		}
		s.dispatcher.Dispatch(event.Event{Type: event.RoomExited, Data: s.roomData(prev)})
	}

	if g, ok := s.groups[roomID]; ok {
		g.OnPlayerEnter.Invoke()
	}
	p.CurrentRoom = roomID

	data := s.roomData(roomID)
	s.log.WithFields(logrus.Fields{"room": data.Name, "has_group": data.HasGroup}).Info("player entered room")
	s.dispatcher.Dispatch(event.Event{Type: event.RoomEntered, Data: data})
}

// ShotFired сообщает группе текущей комнаты о выстреле.
func (s *RoomSystem) ShotFired(source string) {
	room := types.None
	if s.ecs.Player != nil {
		room = s.ecs.Player.CurrentRoom
	}
	if g, ok := s.groups[room]; ok {
		g.OnShotFired.Invoke()
	}
	s.dispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotData{Source: source, Room: room}})
}

// EnemyDamaged сообщает группе комнаты врага о попадании.
func (s *RoomSystem) EnemyDamaged(roomID types.EntityID) {
	if g, ok := s.groups[roomID]; ok {
		g.OnEnemyDamage.Invoke()
	}
}

// GrabHyperseed переводит в агрессию все группы уровня.
func (s *RoomSystem) GrabHyperseed() {
	for _, g := range s.Groups() {
		g.GrabHyperseed.Invoke()
	}
	s.log.Info("hyperseed grabbed, all groups aggressive")
}

func (s *RoomSystem) roomData(roomID types.EntityID) event.RoomData {
	data := event.RoomData{Room: roomID}
	if room, ok := s.ecs.Rooms[roomID]; ok {
		data.Name = room.Name
	}
	_, data.HasGroup = s.groups[roomID]
	return data
}
