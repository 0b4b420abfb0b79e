// internal/ui/cooldown_indicator.go
package ui

import (
	"go-drosera/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// CooldownSlot — действие, для которого HUD показывает полосу перезарядки.
type CooldownSlot struct {
	Action string
	Label  string
}

// CooldownBar заполняется от начала перезарядки до её окончания.
// Полосу двигают только события CooldownStarted и CooldownFinished,
// Update лишь интерполирует заполнение между ними.
type CooldownBar struct {
	Label     string
	Duration  float64
	Remaining float64
	Ready     bool
}

func (b *CooldownBar) Start(duration float64) {
	b.Duration = duration
	b.Remaining = duration
	b.Ready = duration <= 0
}

func (b *CooldownBar) Finish() {
	b.Remaining = 0
	b.Ready = true
}

func (b *CooldownBar) Update(deltaTime float64) {
	if b.Ready {
		return
	}
	b.Remaining -= deltaTime
	if b.Remaining < 0 {
		b.Remaining = 0
	}
}

// Fill — доля заполнения полосы от 0 до 1.
func (b *CooldownBar) Fill() float32 {
	if b.Ready || b.Duration <= 0 {
		return 1
	}
	return float32(1 - b.Remaining/b.Duration)
}

func (b *CooldownBar) Draw(screen *ebiten.Image, face font.Face, x, y float32) {
	const w, h = float32(config.CooldownBarWidth), float32(config.CooldownBarHeight)
	text.Draw(screen, b.Label, face, int(x), int(y)-3, config.TextLightColor)
	vector.DrawFilledRect(screen, x, y, w, h, config.HealthEmptyColor, true)
	fill := config.CooldownColor
	if b.Ready {
		fill = config.ReadyColor
	}
	vector.DrawFilledRect(screen, x, y, w*b.Fill(), h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.RoomStrokeColor, true)
}
