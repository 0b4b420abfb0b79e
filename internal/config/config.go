// internal/config/config.go
package config

import (
	"image/color"
	"os"
)

const (
	ScreenWidth    = 1200
	ScreenHeight   = 900
	MaxDeltaTime   = 0.06
	FixedDeltaTime = 1.0 / 60.0

	// CooldownEpsilon — порог, ниже которого таймер считается истёкшим
	CooldownEpsilon = 0.01

	// Игрок
	PlayerRadius        = 12.0
	PlayerHealth        = 20.0
	PlayerMoveSpeed     = 220.0
	DodgeSpeed          = 900.0
	DodgeTime           = 0.2
	DodgeCooldownTime   = 2.0
	AbilityCooldownTime = 6.0
	InteractCooldown    = 0.2
	InteractRange       = 40.0
	MuzzleOffset        = 18.0

	// Боезапас
	StartAmmo          = 5
	MaxAmmo            = 20
	StartHeldAmmo      = 20
	AmmoPerOre         = 1
	ReloadCooldownTime = 1.0
	PrimaryShotCost    = 1

	// Снаряды
	ProjectileSpeed    = 600.0 // pixels per second
	ProjectileRadius   = 4.0
	ProjectileLifespan = 1.5
	ProjectileDamage   = 5.0
	GrenadeSpeed       = 350.0
	GrenadeLifespan    = 0.8
	GrenadeRadius      = 6.0

	// Альтернативный выстрел (заряженный)
	ChargeShotBaseDamage = 5.0
	ChargeShotMultiplier = 10.0
	ChargeShotSpeed      = 450.0
	ChargeShotLifespan   = 5.0
	ChargeShotCritChance = 3 // 1 из N
	AltFireCooldown      = 6.0

	// Облако урона от DOT-гранаты
	CloudRadius       = 70.0
	CloudDuration     = 4.0
	CloudDamagePerSec = 2.0
	CloudTickInterval = 1.0

	// Объекты взаимодействия
	OreRadius       = 10.0
	HyperseedRadius = 9.0
	DefaultOreUses  = 3

	// Враги
	EnemyRadius           = 11.0
	EnemyContactRange     = 24.0
	EnemyHomeTolerance    = 2.0
	DefaultEnemyHealth    = 15.0
	DefaultEnemySpeed     = 120.0
	DefaultContactDamage  = 1.0
	DefaultAttackCooldown = 1.0

	// Интерфейс
	HUDMargin         = 16
	DamageFlashTime   = 0.25
	HealthCircleSize  = 8.0
	HealthCircleGap   = 4.0
	HealthColumns     = 10
	CooldownBarWidth  = 120.0
	CooldownBarHeight = 8.0
)

// DefaultDebugAddr — адрес pprof и /metrics по умолчанию.
const DefaultDebugAddr = "localhost:6060"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	RoomFloorColor   = color.RGBA{40, 48, 60, 255}
	RoomStrokeColor  = color.RGBA{70, 100, 120, 220}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	PlayerColor      = color.RGBA{80, 200, 255, 255}
	DodgeColor       = color.RGBA{200, 240, 255, 160}
	IdleEnemyColor   = color.RGBA{150, 150, 150, 255}
	AggroEnemyColor  = color.RGBA{220, 60, 60, 255}
	BrawlerStroke    = color.RGBA{255, 215, 0, 255}
	ProjectileColor  = color.RGBA{255, 255, 180, 255}
	CritColor        = color.RGBA{255, 120, 0, 255}
	GrenadeColor     = color.RGBA{120, 220, 90, 255}
	CloudColor       = color.RGBA{90, 200, 60, 90}
	OreColor         = color.RGBA{194, 178, 128, 255}
	HyperseedColor   = color.RGBA{180, 50, 230, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	HealthFullColor  = color.RGBA{50, 100, 255, 255}
	HealthLowColor   = color.RGBA{220, 60, 60, 255}
	HealthEmptyColor = color.RGBA{0, 0, 0, 255}
	CooldownColor    = color.RGBA{70, 130, 180, 220}
	ReadyColor       = color.RGBA{50, 205, 50, 255}
	DamageFlashColor = color.RGBA{255, 0, 0, 70}
	StrokeWidth      = 2.0
)

// DebugAddr возвращает адрес отладочного HTTP-сервера
// с приоритетом: flag -> env -> default.
func DebugAddr(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envVal := os.Getenv("DROSERA_DEBUG_ADDR"); envVal != "" {
		return envVal
	}
	return DefaultDebugAddr
}

// LogLevel возвращает уровень логирования: flag -> DROSERA_LOG_LEVEL -> LOG_LEVEL -> default.
func LogLevel(flagValue string) string {
	return firstSet(flagValue, os.Getenv("DROSERA_LOG_LEVEL"), os.Getenv("LOG_LEVEL"), DefaultLogLevel)
}

// LogFormat возвращает формат логов: flag -> DROSERA_LOG_FORMAT -> LOG_FORMAT -> default.
func LogFormat(flagValue string) string {
	return firstSet(flagValue, os.Getenv("DROSERA_LOG_FORMAT"), os.Getenv("LOG_FORMAT"), DefaultLogFormat)
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
