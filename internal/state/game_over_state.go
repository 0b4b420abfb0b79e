// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"go-drosera/internal/config"
	"go-drosera/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог проигранной сессии и предлагает начать заново.
type GameOverState struct {
	stateMachine *StateMachine
	game         *GameState
	restart      *ui.MenuButton
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	const w, h = 200, 50
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 20
	return &GameOverState{
		stateMachine: sm,
		game:         gs,
		restart:      ui.NewMenuButton(image.Rect(x, y, x+w, y+h), "Restart", gs.face),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		restart = restart || s.restart.IsClicked(x, y)
	}
	if restart {
		s.game.Restart()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	drawBanner(screen, s.game, "YOU DIED", color.RGBA{60, 0, 0, 160})

	summary := fmt.Sprintf("survived %.1fs, %d enemies destroyed", s.game.game.GetGameTime(), s.game.game.Kills)
	bounds := text.BoundString(s.game.face, summary)
	text.Draw(screen, summary, s.game.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
	s.restart.Draw(screen)
}

func (s *GameOverState) Exit() {}
