package event

// Channel — широковещательный канал группы врагов: список подписчиков
// плюс флаг разоружения, который проверяется перед каждой рассылкой.
// Одноразовый канал разоружает себя после первой доставки.
type Channel struct {
	name     string
	oneShot  bool
	disarmed bool
	handlers []func()
}

// NewChannel создаёт многоразовый канал.
func NewChannel(name string) *Channel {
	return &Channel{name: name}
}

// NewOneShotChannel создаёт канал, разоружающийся после первой доставки.
func NewOneShotChannel(name string) *Channel {
	return &Channel{name: name, oneShot: true}
}

// Name — имя канала для логов.
func (c *Channel) Name() string { return c.name }

// Subscribe добавляет подписчика. На разоружённый канал подписаться нельзя.
func (c *Channel) Subscribe(fn func()) bool {
	if c.disarmed || fn == nil {
		return false
	}
	c.handlers = append(c.handlers, fn)
	return true
}

// Invoke доставляет сигнал снимку списка подписчиков и возвращает
// число вызванных обработчиков.
func (c *Channel) Invoke() int {
	if c.disarmed || len(c.handlers) == 0 {
		return 0
	}
	snapshot := make([]func(), len(c.handlers))
	copy(snapshot, c.handlers)
	for _, fn := range snapshot {
		fn()
	}
	if c.oneShot {
		c.Disarm()
	}
	return len(snapshot)
}

// Disarm навсегда отключает канал и удаляет всех подписчиков.
func (c *Channel) Disarm() {
	c.disarmed = true
	c.handlers = nil
}

// Disarmed — разоружён ли канал.
func (c *Channel) Disarmed() bool { return c.disarmed }

// Len — текущее число подписчиков.
func (c *Channel) Len() int { return len(c.handlers) }
