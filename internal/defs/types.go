// internal/defs/types.go
package defs

// Point — координаты в пикселях.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Bounds — прямоугольник комнаты.
type Bounds struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EffectType defines what an ability does when activated.
type EffectType string

const (
	EffectGrenade    EffectType = "grenade"
	EffectDOTGrenade EffectType = "dot_grenade"
	EffectChargeShot EffectType = "charge_shot"
)

// Encounter — полное описание уровня: игрок, способности, враги, комнаты.
type Encounter struct {
	Name      string              `yaml:"name"`
	Player    PlayerDefinition    `yaml:"player"`
	Abilities []AbilityDefinition `yaml:"abilities"`
	Enemies   []EnemyDefinition   `yaml:"enemies"`
	Rooms     []RoomDefinition    `yaml:"rooms"`
}

// PlayerDefinition holds the player's tuning. Zero values fall back to config defaults.
type PlayerDefinition struct {
	Spawn               Point    `yaml:"spawn"`
	Health              float64  `yaml:"health"`
	MoveSpeed           float64  `yaml:"move_speed"`
	DodgeSpeed          float64  `yaml:"dodge_speed"`
	DodgeTime           float64  `yaml:"dodge_time"`
	DodgeCooldownTime   float64  `yaml:"dodge_cooldown_time"`
	AbilityCooldownTime float64  `yaml:"ability_cooldown_time"`
	InteractCooldown    float64  `yaml:"interact_cooldown"`
	ReloadCooldownTime  float64  `yaml:"reload_cooldown_time"`
	Ammo                *int     `yaml:"ammo"`
	MaxAmmo             int      `yaml:"max_ammo"`
	HeldAmmo            *int     `yaml:"held_ammo"`
	AmmoPerOre          int      `yaml:"ammo_per_ore"`
	Loadout             []string `yaml:"loadout"`  // ID способностей, переключаемых клавишей Q
	AltFire             string   `yaml:"alt_fire"` // ID способности альтернативного огня
}

// AbilityDefinition holds the static data for a cooldown-gated ability.
type AbilityDefinition struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Effect   EffectType `yaml:"effect"`
	Cooldown float64    `yaml:"cooldown"`
	AmmoCost int        `yaml:"ammo_cost"`
	Damage   float64    `yaml:"damage"`
}

// RoomDefinition описывает комнату, созданную в редакторе уровней.
type RoomDefinition struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Bounds    Bounds         `yaml:"bounds"`
	Entrance  Point          `yaml:"entrance"`
	Exit      Point          `yaml:"exit"`
	Enemies   []EnemySpawn   `yaml:"enemies"`
	OreVeins  []OreVeinSpawn `yaml:"ore_veins"`
	Hyperseed *Point         `yaml:"hyperseed"`
}

// EnemySpawn ставит врага из библиотеки в точку комнаты.
type EnemySpawn struct {
	Def string  `yaml:"def"`
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
}

// OreVeinSpawn ставит рудную жилу.
type OreVeinSpawn struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Uses int     `yaml:"uses"`
}
