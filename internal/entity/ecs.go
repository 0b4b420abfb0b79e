// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-drosera/internal/component"
	"go-drosera/internal/types"
)

// ECS — арена сущностей. Дескрипторы стабильны: уничтоженная сущность
// просто исчезает из всех карт, и слабые ссылки на неё перестают разрешаться.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	PlayerID      types.EntityID
	Player        *component.Player
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Rooms         map[types.EntityID]*component.Room
	Projectiles   map[types.EntityID]*component.Projectile
	Clouds        map[types.EntityID]*component.DamageCloud
	OreVeins      map[types.EntityID]*component.OreVein
	Hyperseeds    map[types.EntityID]*component.Hyperseed
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Phase         component.GamePhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Rooms:         make(map[types.EntityID]*component.Room),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Clouds:        make(map[types.EntityID]*component.DamageCloud),
		OreVeins:      make(map[types.EntityID]*component.OreVein),
		Hyperseeds:    make(map[types.EntityID]*component.Hyperseed),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Phase:         component.PhasePlaying,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity удаляет сущность из всех хранилищ.
// Игрок и комнаты так не удаляются.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Clouds, id)
	delete(ecs.OreVeins, id)
	delete(ecs.Hyperseeds, id)
	delete(ecs.DamageFlashes, id)
}

// Enemy разрешает слабую ссылку на врага. ok == false, если враг уничтожен.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies[id]
	return e, ok && e != nil
}

// EnemiesInRoom возвращает дескрипторы всех врагов комнаты в порядке создания.
func (ecs *ECS) EnemiesInRoom(roomID types.EntityID) []types.EntityID {
	var ids []types.EntityID
	for id, e := range ecs.Enemies {
		if e.RoomID == roomID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PlayerPosition возвращает позицию игрока (нулевую, если игрока нет).
func (ecs *ECS) PlayerPosition() component.Position {
	if pos, ok := ecs.Positions[ecs.PlayerID]; ok {
		return *pos
	}
	return component.Position{}
}

// RoomAt возвращает комнату, содержащую точку.
func (ecs *ECS) RoomAt(p component.Position) (types.EntityID, bool) {
	// Детерминированный порядок для пересекающихся границ
	ids := make([]types.EntityID, 0, len(ecs.Rooms))
	for id := range ecs.Rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if ecs.Rooms[id].Bounds.Contains(p) {
			return id, true
		}
	}
	return types.None, false
}
