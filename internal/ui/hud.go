// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/event"
	"go-drosera/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDView — снимок состояния сессии, который HUD показывает на кадре.
type HUDView struct {
	Health    float64
	MaxHealth float64
	Loaded    int
	Held      int
	MaxAmmo   int
	State     component.PlayerState
	Room      string
	Ability   string
	Kills     int
}

// HUD — игровой интерфейс поверх сцены. Перезарядки и вспышка урона
// обновляются только по событиям диспетчера.
type HUD struct {
	face      font.Face
	health    *PlayerHealthIndicator
	indicator *StateIndicator
	bars      map[string]*CooldownBar
	order     []string
	flash     float64
}

func NewHUD(dispatcher *event.Dispatcher, face font.Face, slots []CooldownSlot) *HUD {
	h := &HUD{
		face:      face,
		health:    NewPlayerHealthIndicator(config.HUDMargin, config.HUDMargin+20, face),
		indicator: NewStateIndicator(float32(config.ScreenWidth-config.HUDMargin-20), config.HUDMargin+20, 12),
		bars:      make(map[string]*CooldownBar, len(slots)),
	}
	for _, slot := range slots {
		if _, exists := h.bars[slot.Action]; exists {
			continue
		}
		h.bars[slot.Action] = &CooldownBar{Label: slot.Label, Ready: true}
		h.order = append(h.order, slot.Action)
	}
	dispatcher.Subscribe(event.CooldownStarted, h)
	dispatcher.Subscribe(event.CooldownFinished, h)
	dispatcher.Subscribe(event.DamageTaken, h)
	return h
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.CooldownStarted:
		if data, ok := e.Data.(event.CooldownData); ok {
			if bar, ok := h.bars[data.Action]; ok {
				bar.Start(data.Duration)
			}
		}
	case event.CooldownFinished:
		if data, ok := e.Data.(event.CooldownData); ok {
			if bar, ok := h.bars[data.Action]; ok {
				bar.Finish()
			}
		}
	case event.DamageTaken:
		h.flash = config.DamageFlashTime
	}
}

func (h *HUD) Update(deltaTime float64) {
	for _, bar := range h.bars {
		bar.Update(deltaTime)
	}
	if h.flash > 0 {
		h.flash -= deltaTime
	}
}

func (h *HUD) Draw(screen *ebiten.Image, view HUDView) {
	if h.flash > 0 {
		c := config.DamageFlashColor
		c.A = uint8(utils.Lerp(0, float32(c.A), float32(h.flash/config.DamageFlashTime)))
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, c, false)
	}

	h.health.Draw(screen, int(view.Health+0.5), int(view.MaxHealth+0.5))
	h.indicator.Draw(screen, view.State)

	y := int(h.health.Y+h.health.GetHeight(int(view.MaxHealth+0.5))) + 24
	ammo := fmt.Sprintf("AMMO %d/%d  RESERVE %d", view.Loaded, view.MaxAmmo, view.Held)
	text.Draw(screen, ammo, h.face, config.HUDMargin, y, config.TextLightColor)
	if view.Ability != "" {
		y += 18
		text.Draw(screen, "ABILITY "+view.Ability, h.face, config.HUDMargin, y, config.TextLightColor)
	}

	x := float32(config.ScreenWidth - config.HUDMargin - config.CooldownBarWidth)
	barY := float32(config.HUDMargin + 60)
	for _, action := range h.order {
		h.bars[action].Draw(screen, h.face, x, barY)
		barY += config.CooldownBarHeight + 22
	}

	footer := fmt.Sprintf("%s   state: %s   kills: %d", view.Room, view.State, view.Kills)
	text.Draw(screen, footer, h.face, config.HUDMargin, config.ScreenHeight-config.HUDMargin, config.TextLightColor)
}
