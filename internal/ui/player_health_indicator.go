// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-drosera/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	const radius = float32(config.HealthCircleSize)
	const step = radius*2 + float32(config.HealthCircleGap)
	halfHealth := maxHealth / 2

	for j := 0; j < maxHealth; j++ {
		row := j / config.HealthColumns
		col := j % config.HealthColumns

		cx := i.X + float32(col)*step + radius
		cy := i.Y + float32(row)*step + radius

		var c color.RGBA
		if j < health {
			// Если здоровья осталось не больше половины, все кружки красные
			if health <= halfHealth || j >= health-halfHealth {
				c = config.HealthLowColor
			} else {
				c = config.HealthFullColor
			}
		} else {
			// Пустые ячейки - черные
			c = config.HealthEmptyColor
		}

		vector.DrawFilledCircle(screen, cx, cy, radius, c, true)
		vector.StrokeCircle(screen, cx, cy, radius, 1, config.TextLightColor, true)
	}

	// Текстовое отображение здоровья над сеткой
	label := fmt.Sprintf("%d/%d", health, maxHealth)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)-6, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight(maxHealth int) float32 {
	rows := (maxHealth + config.HealthColumns - 1) / config.HealthColumns
	return float32(rows) * float32(config.HealthCircleSize*2+config.HealthCircleGap)
}
