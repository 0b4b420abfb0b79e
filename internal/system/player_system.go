// internal/system/player_system.go
package system

import (
	"math"

	"go-drosera/internal/component"
	"go-drosera/internal/config"
	"go-drosera/internal/entity"
	"go-drosera/internal/event"
	"go-drosera/internal/scheduler"
	"go-drosera/internal/utils"
	"go-drosera/pkg/logger"

	"github.com/sirupsen/logrus"
)

// timerTolerance поглощает ошибку суммирования delta time при сравнении таймеров с порогом.
const timerTolerance = 1e-9

// PlayerDeps — внешние зависимости автомата игрока. Обязательны только
// Input, Spawner и GameOver, остальные могут быть nil.
type PlayerDeps struct {
	Dispatcher   *event.Dispatcher
	Scheduler    *scheduler.Scheduler
	Input        InputSource
	Spawner      ProjectileSpawner
	GameOver     GameOverSink
	Shots        ShotNotifier
	Interactions InteractionHandler
	Loadout      *AbilityLoadout
}

// PlayerSystem — конечный автомат действий игрока. Продвигается раз в тик.
type PlayerSystem struct {
	ecs          *entity.ECS
	dispatcher   *event.Dispatcher
	scheduler    *scheduler.Scheduler
	input        InputSource
	spawner      ProjectileSpawner
	gameOver     GameOverSink
	shots        ShotNotifier
	interactions InteractionHandler
	loadout      *AbilityLoadout
	log          *logrus.Entry
}

func NewPlayerSystem(ecs *entity.ECS, deps PlayerDeps) *PlayerSystem {
	dispatcher := deps.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &PlayerSystem{
		ecs:          ecs,
		dispatcher:   dispatcher,
		scheduler:    deps.Scheduler,
		input:        deps.Input,
		spawner:      deps.Spawner,
		gameOver:     deps.GameOver,
		shots:        deps.Shots,
		interactions: deps.Interactions,
		loadout:      deps.Loadout,
		log:          logger.For("player"),
	}
}

// SetLoadout заменяет набор способностей (они создаются после системы игрока).
func (s *PlayerSystem) SetLoadout(l *AbilityLoadout) { s.loadout = l }

// Loadout возвращает набор способностей.
func (s *PlayerSystem) Loadout() *AbilityLoadout { return s.loadout }

// State возвращает текущее состояние автомата.
func (s *PlayerSystem) State() component.PlayerState {
	if s.ecs.Player == nil {
		return component.StateDead
	}
	return s.ecs.Player.State
}

// Update продвигает автомат на один тик.
// Порядок: проверка смерти, ввод и движение, тело состояния, затем
// убывание перезарядок способности и уклонения.
func (s *PlayerSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p == nil {
		return
	}

	if p.State != component.StateDead && !s.health().Alive() {
		s.setState(component.StateDead)
	}
	if p.State == component.StateDead {
		if s.gameOver != nil {
			s.gameOver.GameLost()
		}
		return
	}

	in := s.poll()
	s.updateAim(in)
	p.AltCharge = utils.Clamp(in.AltCharge, 0, 1)
	if in.SwapAbility && s.loadout != nil {
		s.loadout.Swap()
	}
	s.move(in, deltaTime)

	switch p.State {
	case component.StateNeutral:
		s.neutral(in)
	case component.StateAttacking:
		s.attacking()
	case component.StateReloading:
		s.reloading(deltaTime)
	case component.StateAbility:
		s.ability()
	case component.StateDodging:
		s.dodging(deltaTime)
	case component.StateInteracting:
		s.interacting()
	}

	s.tickCooldown(&p.AbilityCooldown, deltaTime, event.ActionAbility)
	s.tickCooldown(&p.DodgeCooldown, deltaTime, event.ActionDodge)
}

func (s *PlayerSystem) neutral(in Intent) {
	p := s.ecs.Player
	now := s.ecs.GameTime

	switch {
	case in.Attack || in.AltFire:
		if in.Attack {
			p.Trigger = component.TriggerPrimary
		} else {
			p.Trigger = component.TriggerAlt
		}
		s.setState(component.StateAttacking)
	case in.Reload:
		s.setState(component.StateReloading)
	case in.Ability && p.AbilityCooldown <= config.CooldownEpsilon:
		s.setState(component.StateAbility)
	case in.Dodge && p.DodgeCooldown <= config.CooldownEpsilon:
		s.setState(component.StateDodging)
	case in.Interact && now-p.LastInteract > p.Tuning.InteractCooldown:
		s.setState(component.StateInteracting)
	}
}

func (s *PlayerSystem) attacking() {
	p := s.ecs.Player

	if p.Trigger == component.TriggerAlt {
		if s.loadout != nil && s.loadout.AltFire != nil {
			s.loadout.AltFire.Fire(s.abilityContext())
		}
		s.setState(component.StateNeutral)
		return
	}

	if p.Ammo.Loaded <= 0 {
		s.setState(component.StateReloading)
		return
	}

	if s.spawner != nil {
		s.spawner.Spawn(s.ecs.PlayerID, s.muzzle(), component.Projectile{
			Kind:     component.ProjectileBullet,
			DirX:     p.FacingX,
			DirY:     p.FacingY,
			Speed:    config.ProjectileSpeed,
			Damage:   config.ProjectileDamage,
			Radius:   config.ProjectileRadius,
			Lifespan: config.ProjectileLifespan,
		})
	}
	if err := p.Ammo.Spend(config.PrimaryShotCost); err != nil {
		s.log.WithError(err).Warn("primary fire spent more ammo than loaded")
	}
	if s.shots != nil {
		s.shots.ShotFired("primary")
	}
	s.setState(component.StateNeutral)
}

func (s *PlayerSystem) reloading(deltaTime float64) {
	p := s.ecs.Player

	if p.Ammo.Held > 0 && p.ReloadTimer <= config.CooldownEpsilon {
		if moved := p.Ammo.Reload(); moved > 0 {
			s.log.WithFields(logrus.Fields{"moved": moved, "loaded": p.Ammo.Loaded, "held": p.Ammo.Held}).Debug("reloaded")
		}
	}

	// Перезарядка завершается по таймеру, даже если переносить было нечего
	p.ReloadTimer += deltaTime
	if p.ReloadTimer >= p.Tuning.ReloadCooldownTime-timerTolerance {
		s.dispatcher.Dispatch(event.Event{Type: event.CooldownFinished, Data: event.CooldownData{Action: event.ActionReload}})
		s.setState(component.StateNeutral)
	}
}

func (s *PlayerSystem) ability() {
	p := s.ecs.Player

	if s.loadout != nil {
		if a := s.loadout.Selected(); a != nil {
			a.Fire(s.abilityContext())
		}
	}
	p.AbilityCooldown = p.Tuning.AbilityCooldownTime
	s.dispatcher.Dispatch(event.Event{
		Type: event.CooldownStarted,
		Data: event.CooldownData{Action: event.ActionAbility, Duration: p.Tuning.AbilityCooldownTime},
	})
	s.setState(component.StateNeutral)
}

func (s *PlayerSystem) dodging(deltaTime float64) {
	p := s.ecs.Player

	p.DodgeTimer += deltaTime
	if p.DodgeTimer >= p.Tuning.DodgeTime-timerTolerance {
		p.DodgeCooldown = p.Tuning.DodgeCooldownTime
		s.dispatcher.Dispatch(event.Event{
			Type: event.CooldownStarted,
			Data: event.CooldownData{Action: event.ActionDodge, Duration: p.Tuning.DodgeCooldownTime},
		})
		s.setState(component.StateNeutral)
	}
}

func (s *PlayerSystem) interacting() {
	if s.interactions != nil {
		if target, ok := s.interactions.Target(); ok {
			s.interactions.Interact(target)
		}
	}
	s.ecs.Player.LastInteract = s.ecs.GameTime
	s.setState(component.StateNeutral)
}

// TakeDamage уменьшает здоровье; при нуле переводит автомат в Dead.
// В состоянии Dead вызов ничего не меняет.
func (s *PlayerSystem) TakeDamage(amount float64) {
	p := s.ecs.Player
	if p == nil || p.State == component.StateDead || amount <= 0 {
		return
	}
	h := s.health()
	h.Value -= amount
	s.dispatcher.Dispatch(event.Event{Type: event.DamageTaken, Data: event.DamageData{Amount: amount, Health: h.Value, Max: h.Max}})
	if !h.Alive() {
		s.setState(component.StateDead)
	}
}

// Heal восстанавливает здоровье не выше максимума.
func (s *PlayerSystem) Heal(amount float64) {
	p := s.ecs.Player
	if p == nil || p.State == component.StateDead || amount <= 0 {
		return
	}
	h := s.health()
	h.Value = math.Min(h.Max, h.Value+amount)
	s.dispatcher.Dispatch(event.Event{Type: event.Healed, Data: event.DamageData{Amount: amount, Health: h.Value, Max: h.Max}})
}

func (s *PlayerSystem) setState(next component.PlayerState) {
	p := s.ecs.Player
	prev := p.State
	if prev == next {
		return
	}

	switch next {
	case component.StateReloading:
		p.ReloadTimer = 0
		s.dispatcher.Dispatch(event.Event{
			Type: event.CooldownStarted,
			Data: event.CooldownData{Action: event.ActionReload, Duration: p.Tuning.ReloadCooldownTime},
		})
	case component.StateDodging:
		p.DodgeTimer = 0
	case component.StateDead:
		if s.scheduler != nil {
			cancelled := s.scheduler.CancelOwner(s.ecs.PlayerID)
			s.log.WithField("cancelled_tasks", cancelled).Info("player died")
		} else {
			s.log.Info("player died")
		}
	}

	p.State = next
	s.log.WithFields(logrus.Fields{"from": prev.String(), "to": next.String()}).Debug("state changed")
	s.dispatcher.Dispatch(event.Event{
		Type: event.PlayerStateChanged,
		Data: event.StateChangeData{From: prev.String(), To: next.String()},
	})
}

// tickCooldown уменьшает таймер без ограничения снизу и сообщает о его истечении.
func (s *PlayerSystem) tickCooldown(timer *float64, deltaTime float64, action string) {
	before := *timer
	*timer -= deltaTime
	if before > config.CooldownEpsilon && *timer <= config.CooldownEpsilon {
		s.dispatcher.Dispatch(event.Event{Type: event.CooldownFinished, Data: event.CooldownData{Action: action}})
	}
}

func (s *PlayerSystem) poll() Intent {
	if s.input == nil {
		return Intent{}
	}
	return s.input.Poll()
}

func (s *PlayerSystem) move(in Intent, deltaTime float64) {
	p := s.ecs.Player
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	dx, dy, length := utils.Normalize(in.MoveX, in.MoveY)
	if length == 0 {
		return
	}

	speed := p.Tuning.MoveSpeed
	if p.State == component.StateDodging && p.DodgeTimer < p.Tuning.DodgeTime {
		speed = p.Tuning.DodgeSpeed
	}
	pos.X = utils.Clamp(pos.X+dx*speed*deltaTime, 0, config.ScreenWidth)
	pos.Y = utils.Clamp(pos.Y+dy*speed*deltaTime, 0, config.ScreenHeight)
}

func (s *PlayerSystem) updateAim(in Intent) {
	p := s.ecs.Player
	if x, y, l := utils.Normalize(in.AimX, in.AimY); l > 0 {
		p.FacingX, p.FacingY = x, y
		return
	}
	if x, y, l := utils.Normalize(in.MoveX, in.MoveY); l > 0 {
		p.FacingX, p.FacingY = x, y
	}
}

// muzzle — точка вылета снаряда перед игроком.
func (s *PlayerSystem) muzzle() component.Position {
	p := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	return component.Position{
		X: pos.X + p.FacingX*config.MuzzleOffset,
		Y: pos.Y + p.FacingY*config.MuzzleOffset,
	}
}

func (s *PlayerSystem) abilityContext() AbilityContext {
	p := s.ecs.Player
	return AbilityContext{
		Owner:  s.ecs.PlayerID,
		Origin: s.muzzle(),
		DirX:   p.FacingX,
		DirY:   p.FacingY,
		Charge: p.AltCharge,
	}
}

func (s *PlayerSystem) health() *component.Health {
	if h, ok := s.ecs.Healths[s.ecs.PlayerID]; ok {
		return h
	}
	// Игрок без компонента здоровья считается мёртвым
	h := &component.Health{}
	s.ecs.Healths[s.ecs.PlayerID] = h
	return h
}
