// internal/component/player.go
package component

import "go-drosera/internal/types"

// PlayerState — состояние конечного автомата действий игрока.
type PlayerState int

const (
	StateNeutral PlayerState = iota
	StateAttacking
	StateReloading
	StateAbility
	StateDodging
	StateInteracting
	StateDead
)

var playerStateNames = [...]string{"neutral", "attacking", "reloading", "ability", "dodging", "interacting", "dead"}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(playerStateNames) {
		return "unknown"
	}
	return playerStateNames[s]
}

// Valid — является ли значение одним из семи состояний.
func (s PlayerState) Valid() bool {
	return s >= StateNeutral && s <= StateDead
}

// AttackTrigger — какой спуск привёл в состояние Attacking.
type AttackTrigger int

const (
	TriggerPrimary AttackTrigger = iota
	TriggerAlt
)

// PlayerTuning — настраиваемые параметры игрока.
type PlayerTuning struct {
	MoveSpeed           float64
	DodgeSpeed          float64
	DodgeTime           float64
	DodgeCooldownTime   float64
	AbilityCooldownTime float64
	InteractCooldown    float64
	ReloadCooldownTime  float64
	AmmoPerOre          int
}

// Player хранит состояние игрока: автомат, таймеры и боезапас.
type Player struct {
	State   PlayerState
	Trigger AttackTrigger
	Ammo    AmmoPool
	Tuning  PlayerTuning

	DodgeCooldown   float64 // Убывает каждый тик, без ограничения снизу
	AbilityCooldown float64 // Убывает каждый тик, без ограничения снизу
	DodgeTimer      float64
	ReloadTimer     float64
	LastInteract    float64

	FacingX, FacingY float64
	AltCharge        float64

	CurrentRoom types.EntityID // Слабая ссылка, 0 — вне комнат
}
