// Package scheduler реализует отложенные задачи симуляции: таймеры
// перезарядки, задержанные эффекты. Время двигается только через Advance,
// поэтому очередь детерминирована и не требует горутин.
package scheduler

import (
	"container/heap"

	"go-drosera/internal/types"
)

// expiryTolerance поглощает ошибку накопления float64 при суммировании delta time.
const expiryTolerance = 1e-9

// TaskID — дескриптор запланированной задачи.
type TaskID uint64

type task struct {
	id     TaskID
	owner  types.EntityID
	expiry float64
	seq    uint64
	fn     func()
	index  int
	done   bool
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].expiry == q[j].expiry {
		return q[i].seq < q[j].seq
	}
	return q[i].expiry < q[j].expiry
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x interface{}) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler — очередь задач, упорядоченная по времени срабатывания.
type Scheduler struct {
	now    float64
	nextID TaskID
	seq    uint64
	queue  taskQueue
	byID   map[TaskID]*task
}

func New() *Scheduler {
	return &Scheduler{byID: make(map[TaskID]*task)}
}

// Now — текущее время планировщика в секундах.
func (s *Scheduler) Now() float64 { return s.now }

// Schedule запускает fn через delay секунд от текущего времени.
// owner позволяет отменить все задачи сущности разом.
func (s *Scheduler) Schedule(owner types.EntityID, delay float64, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	t := &task{id: s.nextID, owner: owner, expiry: s.now + delay, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel отменяет задачу. Возвращает false, если задача уже выполнена или отменена.
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	// Задача могла быть уже извлечена текущим Advance
	t.done = true
	delete(s.byID, id)
	return true
}

// CancelOwner отменяет все задачи сущности и возвращает их количество.
func (s *Scheduler) CancelOwner(owner types.EntityID) int {
	var ids []TaskID
	for id, t := range s.byID {
		if t.owner == owner {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		s.Cancel(id)
	}
	return len(ids)
}

// Pending — число задач в очереди.
func (s *Scheduler) Pending() int { return len(s.queue) }

// Advance сдвигает время на deltaTime и выполняет созревшие задачи
// в порядке срабатывания. Задачи, запланированные во время Advance,
// выполняются не раньше следующего вызова.
func (s *Scheduler) Advance(deltaTime float64) int {
	s.now += deltaTime
	var due []*task
	for len(s.queue) > 0 && s.queue[0].expiry <= s.now+expiryTolerance {
		due = append(due, heap.Pop(&s.queue).(*task))
	}
	ran := 0
	for _, t := range due {
		if t.done {
			continue
		}
		t.done = true
		delete(s.byID, t.id)
		t.fn()
		ran++
	}
	return ran
}
