// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-drosera/internal/component"
	"go-drosera/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator показывает текущее состояние автомата игрока
// и вспыхивает при каждой смене состояния.
type StateIndicator struct {
	X, Y           float32
	Radius         float32
	LastChangeTime time.Time
	last           component.PlayerState
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, state component.PlayerState) {
	if state != i.last {
		i.last = state
		i.LastChangeTime = time.Now()
	}
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor(state), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.TextLightColor, true)
}

func stateColor(state component.PlayerState) color.RGBA {
	switch state {
	case component.StateAttacking:
		return config.ProjectileColor
	case component.StateReloading:
		return config.CooldownColor
	case component.StateAbility:
		return config.GrenadeColor
	case component.StateDodging:
		return config.DodgeColor
	case component.StateInteracting:
		return config.OreColor
	case component.StateDead:
		return config.HealthEmptyColor
	default:
		return config.ReadyColor
	}
}
