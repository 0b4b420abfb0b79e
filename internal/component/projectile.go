// internal/component/projectile.go
package component

import (
	"go-drosera/internal/types"
)

// ProjectileKind — тип снаряда.
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileChargeShot
	ProjectileGrenade
	ProjectileDOTGrenade
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Kind       ProjectileKind
	Owner      types.EntityID
	DirX, DirY float64 // Нормализованное направление
	Speed      float64
	Damage     float64
	Radius     float64
	Lifespan   float64 // Оставшееся время жизни
	Crit       bool
	// Граната взрывается по истечении Lifespan или при попадании
	SplashRadius float64
	Cloud        *DamageCloud // Для DOT-гранаты: облако, оставляемое на месте взрыва
}
