// component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo возвращает расстояние до другой точки.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// Rect — прямоугольная область (границы комнаты, триггер-объём).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
