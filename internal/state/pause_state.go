// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-drosera/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию поверх игрового состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}

	if unpause {
		// Enter игрового состояния сам «отожмёт» кнопку паузы
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	drawBanner(screen, s.previousState, "PAUSED", color.RGBA{0, 0, 0, 128})
}

func (s *PauseState) Exit() {}

// drawBanner затемняет экран и пишет заголовок по центру.
func drawBanner(screen *ebiten.Image, gs *GameState, title string, shade color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, shade, false)
	bounds := text.BoundString(gs.face, title)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight/2 - 20
	text.Draw(screen, title, gs.face, x, y, config.TextLightColor)
}
