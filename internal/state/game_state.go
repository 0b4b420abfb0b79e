// internal/state/game_state.go
package state

import (
	"fmt"

	"go-drosera/internal/app"
	"go-drosera/internal/config"
	"go-drosera/internal/defs"
	"go-drosera/internal/event"
	"go-drosera/internal/input"
	"go-drosera/internal/metrics"
	"go-drosera/internal/ui"
	"go-drosera/pkg/logger"
	"go-drosera/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Session — всё, что нужно для (пере)запуска игры.
type Session struct {
	Encounter *defs.Encounter
	Seed      int64
	Metrics   *metrics.Collector // nil — без метрик
}

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	session     Session
	game        *app.Game
	rooms       *render.RoomRenderer
	entities    *render.EntityRenderer
	hud         *ui.HUD
	pauseButton *ui.PauseButton
	face        font.Face
}

func NewGameState(sm *StateMachine, session Session) (*GameState, error) {
	keyboard := input.NewKeyboard(nil)
	gameLogic, err := app.NewGame(session.Encounter, app.Options{Input: keyboard, Seed: session.Seed})
	if err != nil {
		return nil, err
	}
	// Сид 0 означает «от времени»; закрепляем фактический, чтобы
	// перезапуск повторял ту же встречу с тем же сидом.
	session.Seed = gameLogic.Rng.Seed()
	keyboard.Origin = func() (float64, float64) {
		p := gameLogic.ECS.PlayerPosition()
		return p.X, p.Y
	}
	if session.Metrics != nil {
		session.Metrics.Attach(gameLogic.EventDispatcher)
	}

	// Создаем и заполняем структуру с цветами для рендерера
	roomColors := render.RoomColors{
		BackgroundColor: config.BackgroundColor,
		FloorColor:      config.RoomFloorColor,
		StrokeColor:     config.RoomStrokeColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	rooms, err := render.NewRoomRenderer(gameLogic.ECS, roomColors, config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		return nil, err
	}
	face, err := render.LoadFace(14)
	if err != nil {
		return nil, err
	}

	hud := ui.NewHUD(gameLogic.EventDispatcher, face, cooldownSlots(gameLogic))
	pauseButton := ui.NewPauseButton(
		float32(config.ScreenWidth/2), config.HUDMargin+12, 10,
		config.CooldownColor, config.ReadyColor,
	)

	return &GameState{
		sm:          sm,
		session:     session,
		game:        gameLogic,
		rooms:       rooms,
		entities:    render.NewEntityRenderer(gameLogic.ECS),
		hud:         hud,
		pauseButton: pauseButton,
		face:        face,
	}, nil
}

func cooldownSlots(g *app.Game) []ui.CooldownSlot {
	slots := []ui.CooldownSlot{
		{Action: event.ActionDodge, Label: "Dodge"},
		{Action: event.ActionReload, Label: "Reload"},
		{Action: event.ActionAbility, Label: "Ability"},
	}
	loadout := g.Loadout()
	if loadout == nil {
		return slots
	}
	for _, a := range loadout.Slots() {
		slots = append(slots, ui.CooldownSlot{Action: a.ID, Label: a.Name})
	}
	if loadout.AltFire != nil {
		slots = append(slots, ui.CooldownSlot{Action: loadout.AltFire.ID, Label: loadout.AltFire.Name})
	}
	return slots
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.pauseClicked() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime)
	g.hud.Update(deltaTime)

	if g.game.IsLost() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return g.pauseButton.IsClicked(x, y)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.rooms.Draw(screen)
	g.entities.Draw(screen, g.game.GetGameTime())
	g.hud.Draw(screen, g.view())
	g.pauseButton.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), config.ScreenWidth-90, config.ScreenHeight-20)
}

func (g *GameState) view() ui.HUDView {
	p := g.game.Player()
	health := g.game.PlayerHealth()
	v := ui.HUDView{
		Health:    health.Value,
		MaxHealth: health.Max,
		Loaded:    p.Ammo.Loaded,
		Held:      p.Ammo.Held,
		MaxAmmo:   p.Ammo.Max,
		State:     p.State,
		Room:      g.game.CurrentRoomName(),
		Kills:     g.game.Kills,
	}
	if loadout := g.game.Loadout(); loadout != nil {
		if a := loadout.Selected(); a != nil {
			v.Ability = a.Name
		}
	}
	return v
}

// Restart начинает новую сессию с теми же параметрами.
func (g *GameState) Restart() {
	next, err := NewGameState(g.sm, g.session)
	if err != nil {
		logger.Log.WithError(err).Error("failed to restart game")
		return
	}
	g.sm.SetState(next)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
