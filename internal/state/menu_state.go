// internal/state/menu_state.go
package state

import (
	"image"

	"go-drosera/internal/config"
	"go-drosera/internal/ui"
	"go-drosera/pkg/logger"
	"go-drosera/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — титульный экран
type MenuState struct {
	sm      *StateMachine
	session Session
	face    font.Face
	start   *ui.MenuButton
}

func NewMenuState(sm *StateMachine, session Session) (*MenuState, error) {
	face, err := render.LoadFace(20)
	if err != nil {
		return nil, err
	}
	const w, h = 200, 50
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight / 2
	return &MenuState{
		sm:      sm,
		session: session,
		face:    face,
		start:   ui.NewMenuButton(image.Rect(x, y, x+w, y+h), "Start", face),
	}, nil
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.start.IsClicked(x, y)
	}
	if !start {
		return
	}
	gs, err := NewGameState(m.sm, m.session)
	if err != nil {
		logger.Log.WithError(err).Error("failed to start game")
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := m.session.Encounter.Name
	bounds := text.BoundString(m.face, title)
	text.Draw(screen, title, m.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-60, config.TextLightColor)
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
