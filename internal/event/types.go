// internal/event/types.go
package event

import "go-drosera/internal/types"

const (
	DamageTaken        EventType = "DamageTaken"        // Игрок получил урон
	Healed             EventType = "Healed"             // Игрок вылечен
	ShotFired          EventType = "ShotFired"          // Выстрел или применение способности
	CooldownStarted    EventType = "CooldownStarted"    // Началась перезарядка действия
	CooldownFinished   EventType = "CooldownFinished"   // Перезарядка действия закончилась
	PlayerStateChanged EventType = "PlayerStateChanged" // Смена состояния автомата игрока
	RoomEntered        EventType = "RoomEntered"
	RoomExited         EventType = "RoomExited"
	EnemyAggroed       EventType = "EnemyAggroed" // Враг перешёл в агрессию
	EnemyDamaged       EventType = "EnemyDamaged"
	EnemyDestroyed     EventType = "EnemyDestroyed"
	OreMined           EventType = "OreMined"
	HyperseedGrabbed   EventType = "HyperseedGrabbed"
	GameLost           EventType = "GameLost"
)

// Имена действий для CooldownStarted / CooldownFinished.
const (
	ActionDodge   = "dodge"
	ActionReload  = "reload"
	ActionAbility = "ability"
)

// DamageData — данные DamageTaken и Healed.
type DamageData struct {
	Amount float64
	Health float64
	Max    float64
}

// ShotData — данные ShotFired.
type ShotData struct {
	Source string // "primary" или имя способности
	Room   types.EntityID
}

// CooldownData — данные CooldownStarted и CooldownFinished.
type CooldownData struct {
	Action   string
	Duration float64
}

// StateChangeData — данные PlayerStateChanged.
type StateChangeData struct {
	From, To string
}

// RoomData — данные RoomEntered и RoomExited.
type RoomData struct {
	Room     types.EntityID
	Name     string
	HasGroup bool
}

// EnemyData — данные событий врага.
type EnemyData struct {
	Enemy  types.EntityID
	Room   types.EntityID
	Kind   string
	Amount float64
}

// OreData — данные OreMined.
type OreData struct {
	Vein     types.EntityID
	Ammo     int
	UsesLeft int
}
