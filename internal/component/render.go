// component/render.go
package component

import "image/color"

// Renderable — как сущность выглядит на экране
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool    // Обводка (драчуны)
	PulseRate float64 // Пульсация объектов взаимодействия, 0 — без неё
}
