package component

// GamePhase — фаза сессии
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseLost
)
