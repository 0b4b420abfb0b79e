package system

import (
	"go-drosera/internal/component"
	"go-drosera/internal/types"
)

// ProjectileSpawner принимает запрос на создание снаряда. Результат не используется.
type ProjectileSpawner interface {
	Spawn(owner types.EntityID, at component.Position, proj component.Projectile)
}

// GameOverSink получает сообщение о проигрыше.
type GameOverSink interface {
	GameLost()
}

// ShotNotifier сообщает группе врагов текущей комнаты о выстреле.
type ShotNotifier interface {
	ShotFired(source string)
}

// InteractionHandler выбирает цель взаимодействия и выполняет его.
type InteractionHandler interface {
	Target() (types.EntityID, bool)
	Interact(target types.EntityID) bool
}

// Damageable — то, что получает урон от врагов.
type Damageable interface {
	TakeDamage(amount float64)
}
