// internal/component/status_effect.go
package component

// DamageCloud — облако урона со временем (DOT-граната).
type DamageCloud struct {
	Radius       float64
	DamagePerSec float64
	Timer        float64 // Сколько времени облаку осталось
	TickInterval float64
	TickTimer    float64
}
