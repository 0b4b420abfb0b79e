// internal/app/spawn.go
package app

import (
	"fmt"
	"math"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/defs"
	"go-drosera/internal/types"
)

// createRoomEntities строит комнаты и их содержимое из определения уровня.
func (g *Game) createRoomEntities() error {
	library := g.Encounter.EnemyByID()

	for _, roomDef := range g.Encounter.Rooms {
		roomID := g.ECS.NewEntity()
		g.ECS.Rooms[roomID] = &component.Room{
			Name: roomName(roomDef),
			Bounds: component.Rect{
				X:      roomDef.Bounds.X,
				Y:      roomDef.Bounds.Y,
				Width:  roomDef.Bounds.Width,
				Height: roomDef.Bounds.Height,
			},
			Entrance: component.Position{X: roomDef.Entrance.X, Y: roomDef.Entrance.Y},
			Exit:     component.Position{X: roomDef.Exit.X, Y: roomDef.Exit.Y},
		}

		for _, spawn := range roomDef.Enemies {
			def, ok := library[spawn.Def]
			if !ok {
				return fmt.Errorf("%w: room %q spawns unknown enemy %q", defs.ErrInvalidEncounter, roomDef.ID, spawn.Def)
			}
			g.createEnemyEntity(roomID, def, component.Position{X: spawn.X, Y: spawn.Y})
		}
		for _, vein := range roomDef.OreVeins {
			g.createOreVein(component.Position{X: vein.X, Y: vein.Y}, vein.Uses)
		}
		if roomDef.Hyperseed != nil {
			g.createHyperseed(component.Position{X: roomDef.Hyperseed.X, Y: roomDef.Hyperseed.Y})
		}
	}
	return nil
}

func (g *Game) createEnemyEntity(roomID types.EntityID, def defs.EnemyDefinition, at component.Position) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	g.ECS.Velocities[id] = &component.Velocity{Speed: def.Speed}
	g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}

	mode := component.ModeIdle
	if def.DefaultMode == component.ModeAggressive.String() {
		mode = component.ModeAggressive
	}
	kind := component.EnemyKind(def.Kind)
	g.ECS.Enemies[id] = &component.Enemy{
		DefID:         def.ID,
		Kind:          kind,
		Mode:          mode,
		DefaultMode:   mode,
		RoomID:        roomID,
		Home:          at,
		ContactDamage: def.ContactDamage,
		AttackCool:    def.AttackCooldown,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.IdleEnemyColor,
		Radius:    float32(config.EnemyRadius),
		HasStroke: kind == component.KindBrawler,
	}
	return id
}

func (g *Game) createOreVein(at component.Position, uses int) types.EntityID {
	if uses <= 0 {
		uses = config.DefaultOreUses
	}
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	g.ECS.OreVeins[id] = &component.OreVein{Uses: uses, MaxUses: uses}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.OreColor, Radius: float32(config.OreRadius), PulseRate: 1.0}
	return id
}

func (g *Game) createHyperseed(at component.Position) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	g.ECS.Hyperseeds[id] = &component.Hyperseed{}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.HyperseedColor, Radius: float32(config.HyperseedRadius), PulseRate: 2.5}
	return id
}

func (g *Game) createPlayerEntity() {
	def := g.Encounter.Player
	id := g.ECS.NewEntity()
	g.ECS.PlayerID = id
	g.ECS.Positions[id] = &component.Position{X: def.Spawn.X, Y: def.Spawn.Y}
	g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: float32(config.PlayerRadius)}

	loaded, held := config.StartAmmo, config.StartHeldAmmo
	if def.Ammo != nil {
		loaded = *def.Ammo
	}
	if def.HeldAmmo != nil {
		held = *def.HeldAmmo
	}
	g.ECS.Player = &component.Player{
		State: component.StateNeutral,
		Ammo:  component.AmmoPool{Loaded: loaded, Held: held, Max: def.MaxAmmo},
		Tuning: component.PlayerTuning{
			MoveSpeed:           def.MoveSpeed,
			DodgeSpeed:          def.DodgeSpeed,
			DodgeTime:           def.DodgeTime,
			DodgeCooldownTime:   def.DodgeCooldownTime,
			AbilityCooldownTime: def.AbilityCooldownTime,
			InteractCooldown:    def.InteractCooldown,
			ReloadCooldownTime:  def.ReloadCooldownTime,
			AmmoPerOre:          def.AmmoPerOre,
		},
		// Первое взаимодействие доступно сразу
		LastInteract: math.Inf(-1),
		FacingX:      1,
	}
}

func roomName(def defs.RoomDefinition) string {
	if def.Name != "" {
		return def.Name
	}
	return def.ID
}
