package component

import "go-drosera/internal/types"

// EnemyMode — поведенческий режим врага.
type EnemyMode int

const (
	ModeIdle EnemyMode = iota
	ModeAggressive
)

func (m EnemyMode) String() string {
	if m == ModeAggressive {
		return "aggressive"
	}
	return "idle"
}

// EnemyKind — разновидность врага.
type EnemyKind string

const (
	KindGrunt   EnemyKind = "grunt"
	KindBrawler EnemyKind = "brawler" // Агрится на любой выстрел в комнате
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID         string
	Kind          EnemyKind
	Mode          EnemyMode
	DefaultMode   EnemyMode // Режим после ResetEnemy
	RoomID        types.EntityID
	Home          Position // Точка появления
	ContactDamage float64
	AttackCool    float64 // Время между ударами
	AttackTimer   float64 // Оставшееся время до следующего удара
}

// Reset возвращает врага в исходное «пробуждённое» состояние.
func (e *Enemy) Reset() {
	e.Mode = e.DefaultMode
	e.AttackTimer = 0
}
