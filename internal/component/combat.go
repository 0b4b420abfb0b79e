package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Alive — жива ли сущность.
func (h *Health) Alive() bool {
	return h.Value > 0
}
