// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription — дескриптор подписки для отписки.
type Subscription uint64

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher — диспетчер исходящих уведомлений (HUD, метрики, логи).
// Безопасен при нуле подписчиков.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    Subscription
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeFunc — подписка функцией
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Subscription {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, sub Subscription) {
	listeners := d.listeners[eventType]
	for i, s := range listeners {
		if s.id == sub {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписчики, добавленные или удалённые во время рассылки, вступают в силу со следующей.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]subscriber, len(listeners))
	copy(snapshot, listeners)
	for _, s := range snapshot {
		s.listener.OnEvent(event)
	}
}

// ListenerCount — число подписчиков на тип события.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
