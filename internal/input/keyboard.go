// internal/input/keyboard.go
package input

import (
	"go-drosera/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// chargeTime — сколько секунд удерживать правую кнопку для полного заряда.
const chargeTime = 1.0

// Keyboard читает клавиатуру и мышь ebiten и собирает из них Intent.
//
//	WASD        движение
//	ЛКМ         основной огонь
//	ПКМ         заряд альтернативного огня, выстрел при отпускании
//	R           перезарядка
//	Shift       способность
//	Q           смена способности
//	Space       уклонение
//	E           взаимодействие
type Keyboard struct {
	// Origin возвращает позицию игрока для расчёта направления прицела.
	Origin func() (float64, float64)

	chargeTicks int
}

func NewKeyboard(origin func() (float64, float64)) *Keyboard {
	return &Keyboard{Origin: origin}
}

func (k *Keyboard) Poll() system.Intent {
	var in system.Intent

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX++
	}

	in.Attack = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		k.chargeTicks = inpututil.MouseButtonPressDuration(ebiten.MouseButtonRight)
	}
	// В кадре отпускания длительность удержания уже сброшена, берём последнюю
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		in.AltFire = true
		in.AltCharge = float64(k.chargeTicks) / float64(ebiten.TPS()) / chargeTime
		k.chargeTicks = 0
	}
	in.Reload = ebiten.IsKeyPressed(ebiten.KeyR)
	in.Ability = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)
	in.SwapAbility = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.Dodge = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Interact = ebiten.IsKeyPressed(ebiten.KeyE)

	if k.Origin != nil {
		cx, cy := ebiten.CursorPosition()
		px, py := k.Origin()
		in.AimX = float64(cx) - px
		in.AimY = float64(cy) - py
	}
	return in
}
