// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Kind           string  `yaml:"kind"` // grunt | brawler
	Health         float64 `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	ContactDamage  float64 `yaml:"contact_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	DefaultMode    string  `yaml:"default_mode"` // idle | aggressive
}
