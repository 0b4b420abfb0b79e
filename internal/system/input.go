// internal/system/input.go
package system

// Intent — снимок ввода на один тик. Ядро читает его как набор
// непрозрачных флагов и осей.
type Intent struct {
	Attack      bool    // Основной спуск (удержание)
	AltFire     bool    // Альтернативный огонь
	AltCharge   float64 // Заряд альтернативного огня, 0..1
	Reload      bool
	Ability     bool // Фронт нажатия
	SwapAbility bool // Фронт нажатия
	Dodge       bool
	Interact    bool
	MoveX       float64
	MoveY       float64
	AimX        float64 // Направление прицела; ноль — направление движения
	AimY        float64
}

// InputSource — источник ввода, опрашиваемый раз в тик.
type InputSource interface {
	Poll() Intent
}

// ScriptedInput — очередь заранее заданных снимков ввода:
// для тестов и безголовых прогонов. Пустая очередь даёт нулевой Intent.
type ScriptedInput struct {
	queue []Intent
}

// NewScriptedInput создаёт очередь из снимков.
func NewScriptedInput(intents ...Intent) *ScriptedInput {
	return &ScriptedInput{queue: intents}
}

// Push добавляет снимки в конец очереди.
func (s *ScriptedInput) Push(intents ...Intent) {
	s.queue = append(s.queue, intents...)
}

// Repeat добавляет один и тот же снимок n раз.
func (s *ScriptedInput) Repeat(intent Intent, n int) {
	for i := 0; i < n; i++ {
		s.queue = append(s.queue, intent)
	}
}

func (s *ScriptedInput) Poll() Intent {
	if len(s.queue) == 0 {
		return Intent{}
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next
}
