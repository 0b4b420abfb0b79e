package render

import (
	"image/color"
	"math"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
	"go-drosera/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntityRenderer рисует динамические сущности: жилы, снаряды, врагов, игрока.
type EntityRenderer struct {
	ecs *entity.ECS
}

func NewEntityRenderer(ecs *entity.ECS) *EntityRenderer {
	return &EntityRenderer{ecs: ecs}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, gameTime float64) {
	// Сначала облака, чтобы они лежали под остальными
	for id, cloud := range r.ecs.Clouds {
		if pos, ok := r.ecs.Positions[id]; ok {
			radius := float32(cloud.Radius)
			if rend, ok := r.ecs.Renderables[id]; ok {
				radius = rend.Radius
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, config.CloudColor, true)
		}
	}

	// Затем отрисовка руды с пульсацией
	for id := range r.ecs.OreVeins {
		r.drawPulsing(screen, id, gameTime)
	}
	for id := range r.ecs.Hyperseeds {
		r.drawPulsing(screen, id, gameTime)
	}

	for id, proj := range r.ecs.Projectiles {
		if pos, ok := r.ecs.Positions[id]; ok {
			if rend, ok := r.ecs.Renderables[id]; ok {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, rend.Color, true)
			} else {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(proj.Radius), config.ProjectileColor, true)
			}
		}
	}

	for id, enemy := range r.ecs.Enemies {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		rend, ok := r.ecs.Renderables[id]
		if !ok {
			continue
		}
		fill := config.IdleEnemyColor
		if enemy.Mode == component.ModeAggressive {
			fill = config.AggroEnemyColor
		}
		if _, flashing := r.ecs.DamageFlashes[id]; flashing {
			fill = LightenColor(fill, 90)
		}
		if rend.HasStroke {
			strokeRadius := rend.Radius + 2
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.BrawlerStroke, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, fill, true)
	}

	r.drawPlayer(screen)
}

func (r *EntityRenderer) drawPulsing(screen *ebiten.Image, id types.EntityID, gameTime float64) {
	pos, ok := r.ecs.Positions[id]
	if !ok {
		return
	}
	rend, ok := r.ecs.Renderables[id]
	if !ok {
		return
	}
	rate := rend.PulseRate
	pulseRadius := rend.Radius * float32(1+0.1*math.Sin(gameTime*rate*math.Pi))
	pulseColor := rend.Color
	pulseColor.A = uint8(160 + 64*math.Sin(gameTime*rate*math.Pi))
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), pulseRadius, pulseColor, true)
}

func (r *EntityRenderer) drawPlayer(screen *ebiten.Image) {
	p := r.ecs.Player
	pos, ok := r.ecs.Positions[r.ecs.PlayerID]
	if p == nil || !ok {
		return
	}
	radius := float32(config.PlayerRadius)
	if rend, ok := r.ecs.Renderables[r.ecs.PlayerID]; ok {
		radius = rend.Radius
	}

	var fill color.RGBA
	switch p.State {
	case component.StateDodging:
		fill = config.DodgeColor
	case component.StateDead:
		fill = DarkenColor(config.PlayerColor)
	default:
		fill = config.PlayerColor
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, fill, true)

	// Направление прицела
	x1 := float32(pos.X + p.FacingX*config.MuzzleOffset)
	y1 := float32(pos.Y + p.FacingY*config.MuzzleOffset)
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), x1, y1, float32(config.StrokeWidth), config.TextLightColor, true)
}
