// internal/system/ability.go
package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/event"
	"go-drosera/internal/scheduler"
	"go-drosera/internal/types"
	"go-drosera/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AbilityContext — откуда и куда применяется способность.
type AbilityContext struct {
	Owner      types.EntityID
	Origin     component.Position
	DirX, DirY float64
	Charge     float64 // Заряд альтернативного огня, 0..1
}

// AbilityEffect — сам эффект способности (граната, облако, заряженный выстрел).
type AbilityEffect interface {
	Activate(ctx AbilityContext)
}

// AbilityEffectFunc позволяет задать эффект функцией.
type AbilityEffectFunc func(ctx AbilityContext)

func (f AbilityEffectFunc) Activate(ctx AbilityContext) { f(ctx) }

// AbilityDeps — общие зависимости контроллеров способностей.
type AbilityDeps struct {
	Owner      types.EntityID
	Ammo       *component.AmmoPool
	Scheduler  *scheduler.Scheduler
	Dispatcher *event.Dispatcher
	Shots      ShotNotifier
}

// Ability — контроллер способности с перезарядкой и стоимостью в патронах.
type Ability struct {
	ID       string
	Name     string
	Cooldown float64
	AmmoCost int

	effect     AbilityEffect
	deps       AbilityDeps
	onCooldown bool
	hooks      []func()
	log        *logrus.Entry
}

func NewAbility(id, name string, cooldown float64, ammoCost int, effect AbilityEffect, deps AbilityDeps) *Ability {
	if deps.Dispatcher == nil {
		deps.Dispatcher = event.NewDispatcher()
	}
	return &Ability{
		ID:       id,
		Name:     name,
		Cooldown: cooldown,
		AmmoCost: ammoCost,
		effect:   effect,
		deps:     deps,
		log:      logger.For("ability").WithField("ability", id),
	}
}

// OnCooldown — способность перезаряжается.
func (a *Ability) OnCooldown() bool { return a.onCooldown }

// OnCooldownFinished регистрирует обработчик окончания перезарядки.
func (a *Ability) OnCooldownFinished(fn func()) {
	if fn != nil {
		a.hooks = append(a.hooks, fn)
	}
}

// Fire применяет способность. Возвращает false, если способность
// перезаряжается или заряженных патронов меньше стоимости.
func (a *Ability) Fire(ctx AbilityContext) bool {
	if a.onCooldown {
		return false
	}
	if a.deps.Ammo != nil && !a.deps.Ammo.CanSpend(a.AmmoCost) {
		a.log.WithFields(logrus.Fields{"cost": a.AmmoCost, "loaded": a.deps.Ammo.Loaded}).Debug("not enough ammo")
		return false
	}

	if a.effect != nil {
		a.effect.Activate(ctx)
	}
	if a.deps.Ammo != nil {
		// CanSpend уже проверен
		_ = a.deps.Ammo.Spend(a.AmmoCost)
	}
	a.onCooldown = true
	if a.deps.Shots != nil {
		a.deps.Shots.ShotFired(a.ID)
	}
	a.deps.Dispatcher.Dispatch(event.Event{
		Type: event.CooldownStarted,
		Data: event.CooldownData{Action: a.ID, Duration: a.Cooldown},
	})

	if a.deps.Scheduler != nil {
		a.deps.Scheduler.Schedule(a.deps.Owner, a.Cooldown, a.finishCooldown)
	} else {
		// Без планировщика таймер некому завершить: способность остаётся на перезарядке
		a.log.Warn("no scheduler, cooldown will not finish")
	}
	a.log.Debug("fired")
	return true
}

func (a *Ability) finishCooldown() {
	a.onCooldown = false
	a.deps.Dispatcher.Dispatch(event.Event{
		Type: event.CooldownFinished,
		Data: event.CooldownData{Action: a.ID},
	})
	for _, fn := range a.hooks {
		fn()
	}
}

// AbilityLoadout — набор способностей игрока: переключаемые слоты
// и отдельная способность альтернативного огня.
type AbilityLoadout struct {
	slots    []*Ability
	selected int
	AltFire  *Ability
}

func NewAbilityLoadout(altFire *Ability, slots ...*Ability) *AbilityLoadout {
	return &AbilityLoadout{slots: slots, AltFire: altFire}
}

// Selected возвращает выбранную способность или nil для пустого набора.
func (l *AbilityLoadout) Selected() *Ability {
	if len(l.slots) == 0 {
		return nil
	}
	return l.slots[l.selected]
}

// Swap переключает на следующий слот по кругу.
func (l *AbilityLoadout) Swap() {
	if len(l.slots) == 0 {
		return
	}
	l.selected = (l.selected + 1) % len(l.slots)
}

// Slots возвращает все переключаемые способности.
func (l *AbilityLoadout) Slots() []*Ability { return l.slots }
