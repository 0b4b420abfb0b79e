// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go-drosera/internal/config"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEncounter is returned when an encounter file fails validation.
var ErrInvalidEncounter = errors.New("invalid encounter")

//go:embed data/encounter.yaml
var defaultEncounter []byte

// LoadEncounter reads an encounter file from disk.
func LoadEncounter(path string) (*Encounter, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read encounter file: %w", err)
	}
	enc, err := ParseEncounter(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return enc, nil
}

// DefaultEncounter returns the encounter bundled with the binary.
func DefaultEncounter() (*Encounter, error) {
	return ParseEncounter(defaultEncounter)
}

// ParseEncounter unmarshals and validates an encounter, filling player defaults.
func ParseEncounter(data []byte) (*Encounter, error) {
	var enc Encounter
	if err := yaml.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal encounter: %w", err)
	}
	enc.Player.applyDefaults()
	for i := range enc.Enemies {
		enc.Enemies[i].applyDefaults()
	}
	if err := enc.Validate(); err != nil {
		return nil, err
	}
	return &enc, nil
}

// EnemyByID returns the enemy library keyed by ID.
func (e *Encounter) EnemyByID() map[string]EnemyDefinition {
	lib := make(map[string]EnemyDefinition, len(e.Enemies))
	for _, def := range e.Enemies {
		lib[def.ID] = def
	}
	return lib
}

// AbilityByID returns the ability library keyed by ID.
func (e *Encounter) AbilityByID() map[string]AbilityDefinition {
	lib := make(map[string]AbilityDefinition, len(e.Abilities))
	for _, def := range e.Abilities {
		lib[def.ID] = def
	}
	return lib
}

// Validate checks references between sections.
func (e *Encounter) Validate() error {
	if len(e.Rooms) == 0 {
		return fmt.Errorf("%w: no rooms", ErrInvalidEncounter)
	}

	enemies := make(map[string]bool, len(e.Enemies))
	for _, def := range e.Enemies {
		if def.ID == "" {
			return fmt.Errorf("%w: enemy without id", ErrInvalidEncounter)
		}
		if enemies[def.ID] {
			return fmt.Errorf("%w: duplicate enemy %q", ErrInvalidEncounter, def.ID)
		}
		switch def.Kind {
		case "grunt", "brawler":
		default:
			return fmt.Errorf("%w: enemy %q has unknown kind %q", ErrInvalidEncounter, def.ID, def.Kind)
		}
		switch def.DefaultMode {
		case "idle", "aggressive":
		default:
			return fmt.Errorf("%w: enemy %q has unknown default mode %q", ErrInvalidEncounter, def.ID, def.DefaultMode)
		}
		enemies[def.ID] = true
	}

	abilities := make(map[string]bool, len(e.Abilities))
	for _, def := range e.Abilities {
		if def.ID == "" || abilities[def.ID] {
			return fmt.Errorf("%w: missing or duplicate ability id %q", ErrInvalidEncounter, def.ID)
		}
		switch def.Effect {
		case EffectGrenade, EffectDOTGrenade, EffectChargeShot:
		default:
			return fmt.Errorf("%w: ability %q has unknown effect %q", ErrInvalidEncounter, def.ID, def.Effect)
		}
		if def.Cooldown < 0 || def.AmmoCost < 0 {
			return fmt.Errorf("%w: ability %q has negative cooldown or cost", ErrInvalidEncounter, def.ID)
		}
		abilities[def.ID] = true
	}
	for _, id := range e.Player.Loadout {
		if !abilities[id] {
			return fmt.Errorf("%w: loadout references unknown ability %q", ErrInvalidEncounter, id)
		}
	}
	if e.Player.AltFire != "" && !abilities[e.Player.AltFire] {
		return fmt.Errorf("%w: alt fire references unknown ability %q", ErrInvalidEncounter, e.Player.AltFire)
	}

	rooms := make(map[string]bool, len(e.Rooms))
	for _, room := range e.Rooms {
		if room.ID == "" || rooms[room.ID] {
			return fmt.Errorf("%w: missing or duplicate room id %q", ErrInvalidEncounter, room.ID)
		}
		if room.Bounds.Width <= 0 || room.Bounds.Height <= 0 {
			return fmt.Errorf("%w: room %q has empty bounds", ErrInvalidEncounter, room.ID)
		}
		for _, spawn := range room.Enemies {
			if !enemies[spawn.Def] {
				return fmt.Errorf("%w: room %q spawns unknown enemy %q", ErrInvalidEncounter, room.ID, spawn.Def)
			}
		}
		rooms[room.ID] = true
	}
	return nil
}

func (p *PlayerDefinition) applyDefaults() {
	setDefault(&p.Health, config.PlayerHealth)
	setDefault(&p.MoveSpeed, config.PlayerMoveSpeed)
	setDefault(&p.DodgeSpeed, config.DodgeSpeed)
	setDefault(&p.DodgeTime, config.DodgeTime)
	setDefault(&p.DodgeCooldownTime, config.DodgeCooldownTime)
	setDefault(&p.AbilityCooldownTime, config.AbilityCooldownTime)
	setDefault(&p.InteractCooldown, config.InteractCooldown)
	setDefault(&p.ReloadCooldownTime, config.ReloadCooldownTime)
	if p.MaxAmmo == 0 {
		p.MaxAmmo = config.MaxAmmo
	}
	if p.AmmoPerOre == 0 {
		p.AmmoPerOre = config.AmmoPerOre
	}
	// Ноль патронов — допустимое значение, поэтому указатели
	if p.Ammo == nil {
		v := config.StartAmmo
		p.Ammo = &v
	}
	if p.HeldAmmo == nil {
		v := config.StartHeldAmmo
		p.HeldAmmo = &v
	}
}

func (d *EnemyDefinition) applyDefaults() {
	setDefault(&d.Health, config.DefaultEnemyHealth)
	setDefault(&d.Speed, config.DefaultEnemySpeed)
	setDefault(&d.ContactDamage, config.DefaultContactDamage)
	setDefault(&d.AttackCooldown, config.DefaultAttackCooldown)
	if d.Kind == "" {
		d.Kind = "grunt"
	}
	if d.DefaultMode == "" {
		d.DefaultMode = "idle"
	}
}

func setDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
