// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"go-drosera/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
	face    font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, label string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    label,
		bgColor: config.RoomFloorColor,
		fgColor: config.TextLightColor,
		face:    face,
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.RoomStrokeColor, true)

	bounds := text.BoundString(b.face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.face, tx, ty, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
